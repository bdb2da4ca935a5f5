package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weather-api/internal/service"
)

const authUserIDKey = "auth_user_id"

// bearerPrefix se compara exacto y sensible a mayúsculas.
const bearerPrefix = "Bearer "

// AuthMiddleware valida el token bearer y guarda el id del usuario en el
// contexto. Toda falla, sea cual sea la causa, responde 403 con el mismo
// cuerpo: el llamador no puede distinguir header ausente de token inválido.
func AuthMiddleware(tokenSvc *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			rejectNotAuthenticated(c)
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			rejectNotAuthenticated(c)
			return
		}

		token := header[len(bearerPrefix):]
		if token == "" {
			rejectNotAuthenticated(c)
			return
		}

		userID, err := tokenSvc.Verify(token)
		if err != nil {
			rejectNotAuthenticated(c)
			return
		}

		c.Set(authUserIDKey, userID)
		c.Next()
	}
}

func rejectNotAuthenticated(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Not Authenticated"})
	c.Abort()
}

// GetAuthUserID obtiene el id del usuario autenticado desde el contexto.
func GetAuthUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(authUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}
