package services

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// AuthSvcFacade identifies the caller of a request.
type AuthSvcFacade interface {
	// UserFromToken validates a bearer token signed with the contracts API secret.
	UserFromToken(ctx context.Context, token string) (*domain.User, error)

	// UserFromSession resolves the contracts API session carried by ctx.
	UserFromSession(ctx context.Context) (*domain.User, error)
}
