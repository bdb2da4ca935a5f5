package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"weather-api/internal/config"
	"weather-api/internal/db"
	apihttp "weather-api/internal/http"
	"weather-api/internal/repository"
	"weather-api/internal/service"
	"weather-api/internal/weather"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	{
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		cancel()
	}

	userRepo := repository.NewPgUserRepository(pool)

	var weatherCache weather.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			weatherCache = weather.NewRedisCache(redisClient)
		}
		cancel()
	}

	weatherClient := weather.NewCachedClient(
		weather.NewHTTPClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, zap.NewStdLog(logger)),
		weatherCache,
	)

	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	userSvc := service.NewUserService(logger, userRepo)
	userHandler := apihttp.NewUserHandler(logger, userSvc, tokenSvc)
	weatherHandler := apihttp.NewWeatherHandler(logger, userRepo, weatherClient)
	router := apihttp.NewRouter(logger, userHandler, weatherHandler, tokenSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
