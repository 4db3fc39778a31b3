package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	authService "github.com/nes268/healmate/internal/service/auth"
)

type AuthMiddleware struct {
	authService *authService.Service
}

func NewAuthMiddleware(svc *authService.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: svc}
}

// Authenticate verifies the bearer token and sets the user's identity
// in the request context. Guarded handlers never run on a missing,
// malformed, expired or revoked token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Access token required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Invalid authorization format"))
			return
		}

		claims, err := m.authService.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, handler.NewErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(handler.ContextUserID, claims.UserID)
		c.Set(handler.ContextUserEmail, claims.Email)
		c.Next()
	}
}
