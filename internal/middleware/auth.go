package middleware

import (
	"strings"

	"admindash_backend/internal/auth"
	"admindash_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates every protected endpoint behind the shared admin
// session token. Missing/invalid/expired tokens are unauthorized; a valid
// token with the wrong role claim is forbidden.
func AdminAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		if claims.Role != auth.RoleAdmin {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Admin role required"))
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
