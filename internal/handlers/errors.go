package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to the HTTP status and the message shown to the caller.
func statusFor(err error, fallback string) (int, string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, apperrors.ErrNotConfigured):
		return http.StatusNotImplemented, err.Error()
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, "Contracts API error"
	case errors.As(err, &appErr):
		return appErr.Code, appErr.Message
	}
	return http.StatusInternalServerError, fallback
}

// respondError logs err at a level matching its status and writes {"error": ...}.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, msg := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": msg})
}

// requireUser reads the authenticated user or aborts with 401.
func requireUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return user, true
}
