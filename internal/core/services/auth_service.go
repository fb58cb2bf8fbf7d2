package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/utils"
)

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	sessions  portsrepo.SessionReader
	jwtSecret string
	jwtIssuer string
}

// NewAuthService creates a new auth service. Tokens are rejected when jwtSecret is empty.
func NewAuthService(sessions portsrepo.SessionReader, jwtSecret, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		sessions:  sessions,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
	}
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	if s.jwtSecret == "" {
		return nil, fmt.Errorf("%w: token authentication is disabled", apperrors.ErrUnauthorized)
	}

	claims, err := utils.ParseAndValidateJWT(token, s.jwtSecret, s.jwtIssuer)
	if err != nil {
		s.LogDebug(ctx, "Token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	user, err := claims.User()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	return user, nil
}

func (s *authService) UserFromSession(ctx context.Context) (*domain.User, error) {
	user, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			s.LogError(ctx, err, "Failed to resolve session")
		}
		return nil, err
	}
	return user, nil
}
