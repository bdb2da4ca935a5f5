package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weather-api/internal/repository"
	"weather-api/internal/service"
)

// statusLengthRequired es el código que el contrato expone para errores de
// validación, conflictos de unicidad y credenciales inválidas.
const statusLengthRequired = http.StatusLengthRequired

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	tokenSvc *service.TokenService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, tokenSvc *service.TokenService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
		tokenSvc: tokenSvc,
	}
}

// Signup maneja POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var payload service.SignupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(statusLengthRequired, gin.H{"path": "", "message": "Invalid request body"})
		return
	}

	if fieldErr := service.ValidateSignup(payload); fieldErr != nil {
		c.JSON(statusLengthRequired, fieldErr)
		return
	}

	user, err := h.userServ.Signup(c.Request.Context(), payload)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			switch conflict.Field {
			case "username":
				c.JSON(statusLengthRequired, gin.H{"error": "Username already taken"})
			case "email":
				c.JSON(statusLengthRequired, gin.H{"error": "Email already taken"})
			default:
				c.JSON(statusLengthRequired, gin.H{"error": "Unique constraint failed"})
			}
			return
		}
		h.logger.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred", "details": err.Error()})
		return
	}

	// La confirmación expone solo campos no sensibles; nunca el hash.
	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

// Signin maneja POST /user/signin.
func (h *UserHandler) Signin(c *gin.Context) {
	var payload service.SigninPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid signin request", zap.Error(err))
		c.JSON(statusLengthRequired, gin.H{"path": "", "message": "Invalid request body"})
		return
	}

	if fieldErr := service.ValidateSignin(payload); fieldErr != nil {
		c.JSON(statusLengthRequired, fieldErr)
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Mismo cuerpo para usuario inexistente y password incorrecto.
			c.JSON(statusLengthRequired, gin.H{"message": "Invalid username / password"})
			return
		}
		h.logger.Error("signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred", "details": err.Error()})
		return
	}

	token, err := h.tokenSvc.Issue(user.ID)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"token":   token,
	})
}
