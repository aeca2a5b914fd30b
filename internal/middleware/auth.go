package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hockeylive/backend/internal/constants"
	apierrors "github.com/hockeylive/backend/internal/errors"
	"github.com/hockeylive/backend/internal/logger"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/services"
)

// RequireAuth resolves the bearer token from the Authorization header against
// the token store. An unknown, expired, or orphaned token is a 401.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := authService.ResolveToken(token)
		if err != nil {
			logger.Get().Error("token resolution failed", zap.Error(err))
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}
		if user == nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyToken, token)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// GetToken retrieves the raw bearer token from context
func GetToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyToken)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
