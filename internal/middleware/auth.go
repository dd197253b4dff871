package middleware

import (
	"strings"

	"usta_backend/internal/auth"
	"usta_backend/internal/logger"
	"usta_backend/internal/models"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	claimsKey = "claims"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// on the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authorization header must be a Bearer token"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// RequireRoles allows the request through when the token carries at least one
// of the roles. Admins always pass.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}
		if claims.HasRole(string(models.UserRoleAdmin)) {
			c.Next()
			return
		}
		for _, role := range roles {
			if claims.HasRole(string(role)) {
				c.Next()
				return
			}
		}
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// GetUserID returns the authenticated user ID, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	if id, ok := c.Get(userIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// GetClaims returns the parsed token claims, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// IsAdmin reports whether the caller holds the Admin role.
func IsAdmin(c *gin.Context) bool {
	claims := GetClaims(c)
	return claims != nil && claims.HasRole(string(models.UserRoleAdmin))
}
