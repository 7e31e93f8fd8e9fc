package services

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

// AuthSvcFacade checks the fixed credential pair and issues session tokens.
type AuthSvcFacade interface {
	// Login validates the credentials and returns the new session with its signed token.
	// Wrong credentials yield a 401 AppError.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, error)
}
