package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

// ContextUserKey is the gin context key storing the authenticated user.
const ContextUserKey = "currentUser"

// ContextTokenKey is the gin context key storing the raw session token.
const ContextTokenKey = "sessionToken"

// Session protects routes by requiring a live session. The token is read
// from the Authorization header first, then from the session cookie.
func Session(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Session.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// SessionToken returns the raw token stored by Session, empty if absent.
func SessionToken(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}

func extractToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil {
			return token
		}
	}
	return ""
}
