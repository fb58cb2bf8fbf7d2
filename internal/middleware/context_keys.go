package middleware

import (
	"context"
	"strconv"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userKey       = contextKey("user")
	authMethodKey = contextKey("authMethod")
)

// Authentication methods recorded under authMethodKey.
const (
	AuthMethodToken   = "token"
	AuthMethodSession = "session"
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromCtx retrieves the authenticated user from a standard context.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// GetUserFromContext retrieves the authenticated user from the Gin context.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	if v, exists := c.Get(string(userKey)); exists {
		if user, ok := v.(*domain.User); ok && user != nil {
			return user, true
		}
	}
	// check in the request context as well
	return UserFromCtx(c.Request.Context())
}

// GetUserIDFromContext returns the authenticated user's id as a string, the form
// analytics and logs use.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(user.ID, 10), true
}

// GetAuthMethodFromContext returns how the caller authenticated, or "" before AuthMiddleware ran.
func GetAuthMethodFromContext(c *gin.Context) string {
	return c.GetString(string(authMethodKey))
}
