package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	WeatherAPIKey  string `env:"WEATHER_API_KEY,required"`
	WeatherBaseURL string `env:"WEATHER_BASE_URL" envDefault:"https://api.weatherapi.com/v1"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
