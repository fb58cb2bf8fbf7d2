package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/contracts_tracker/internal/adapters/contractsapi"
	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware identifies the caller. A Bearer token signed with the contracts API
// secret is checked locally; otherwise the browser session cookie is forwarded to
// the contracts API. The cookie is kept in the request context either way so that
// later calls to the contracts API act on behalf of the caller.
func AuthMiddleware(auth portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx)

		// if auth is already done, skip this middleware
		if authMethod, exists := c.Get(string(authMethodKey)); exists {
			logger.Debug("Auth already done", "authMethod", authMethod)
			c.Next()
			return
		}

		cookie := c.GetHeader("Cookie")
		if cookie != "" {
			ctx = contractsapi.WithSessionCookie(ctx, cookie)
			c.Request = c.Request.WithContext(ctx)
		}

		var (
			user   *domain.User
			err    error
			method string
		)
		authHeader := c.GetHeader("Authorization")
		switch {
		case authHeader != "":
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			method = AuthMethodToken
			user, err = auth.UserFromToken(ctx, parts[1])
		case cookie != "":
			method = AuthMethodSession
			user, err = auth.UserFromSession(ctx)
		default:
			logger.Warn("Request carries neither a token nor a session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header or session cookie required"})
			return
		}

		if err != nil {
			status, msg := authFailure(err)
			logger.Warn("Authentication failed", slog.String("method", method), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		enrichedLogger := logger.With(
			slog.Int64("user_id", user.ID),
			slog.String("username", user.Username),
		)

		ctx = WithLogger(WithUser(ctx, user), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userKey), user)
		c.Set(string(loggerKey), enrichedLogger)
		c.Set(string(authMethodKey), method)

		c.Next()
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return http.StatusUnauthorized, "Token not valid yet"
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, "Contracts API unavailable"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Session is not authenticated"
	default:
		return http.StatusUnauthorized, "Invalid token"
	}
}
