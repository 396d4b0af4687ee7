package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wagate/internal/infrastructure/auth"
	apperrors "wagate/internal/shared/errors"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAdmin guards the merchant settings endpoints.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AppErrorResponse(c, apperrors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.AppErrorResponse(c, apperrors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.AppErrorResponse(c, apperrors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
