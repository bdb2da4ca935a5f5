package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weather-api/internal/repository"
	"weather-api/internal/service"
	"weather-api/internal/weather"
)

// WeatherHandler mantiene dependencias para la consulta de clima.
type WeatherHandler struct {
	logger  *zap.Logger
	users   repository.UserRepository
	weather weather.Client
}

// NewWeatherHandler crea una instancia de WeatherHandler con dependencias necesarias.
func NewWeatherHandler(logger *zap.Logger, users repository.UserRepository, client weather.Client) *WeatherHandler {
	return &WeatherHandler{
		logger:  logger,
		users:   users,
		weather: client,
	}
}

// Current maneja GET /weather/. Requiere principal autenticado en contexto.
func (h *WeatherHandler) Current(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not Authenticated"})
		return
	}

	if _, err := h.users.GetByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred", "details": err.Error()})
		return
	}

	var payload service.WeatherPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid weather request", zap.Error(err))
		c.JSON(statusLengthRequired, gin.H{"path": "", "message": "Invalid request body"})
		return
	}

	if fieldErr := service.ValidateWeather(payload); fieldErr != nil {
		c.JSON(statusLengthRequired, fieldErr)
		return
	}

	report, err := h.weather.Current(c.Request.Context(), payload.Location)
	if err != nil {
		if errors.Is(err, weather.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No weather data found"})
			return
		}
		h.logger.Error("weather fetch failed", zap.Error(err), zap.String("location", payload.Location))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching weather data"})
		return
	}

	c.JSON(http.StatusOK, report)
}
