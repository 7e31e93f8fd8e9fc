package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils"
)

type authService struct {
	BaseService
	username     string
	password     string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService creates the login service for the credential pair in cfg.
func NewAuthService(cfg *config.Config, opts ...Option) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  newBaseService(opts),
		username:     cfg.AuthUsername,
		password:     cfg.AuthPassword,
		passwordHash: cfg.AuthPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, error) {
	if req.Usuario == "" || req.Senha == "" {
		return nil, "", apperrors.NewValidationError("Usuário e senha são obrigatórios")
	}

	userOK := utils.EqualConstantTime(req.Usuario, s.username)
	var passOK bool
	if s.passwordHash != "" {
		passOK = utils.CheckPasswordHash(req.Senha, s.passwordHash)
	} else {
		passOK = utils.EqualConstantTime(req.Senha, s.password)
	}
	if !userOK || !passOK {
		s.GetLogger(ctx).Warn("Login rejected", slog.String("usuario", req.Usuario))
		return nil, "", apperrors.NewUnauthorizedError("Credenciais inválidas")
	}

	token, expiresAt, err := utils.GenerateJWT(s.username, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token")
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("usuario", s.username))
	return &domain.Session{Username: s.username, ExpiresAt: expiresAt.UTC()}, token, nil
}
