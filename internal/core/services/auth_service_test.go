package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authConfig() *config.Config {
	return &config.Config{
		AuthUsername:      "eighmen",
		AuthPassword:      "Eighmen8",
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "orbisx-backend",
	}
}

func TestLogin_Success(t *testing.T) {
	svc := services.NewAuthService(authConfig())

	session, token, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "eighmen", Senha: "Eighmen8"})

	require.NoError(t, err)
	assert.Equal(t, "eighmen", session.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "eighmen", claims.Subject)
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc := services.NewAuthService(authConfig())

	for _, req := range []dto.LoginRequest{
		{Usuario: "eighmen", Senha: "eighmen8"},
		{Usuario: "admin", Senha: "Eighmen8"},
	} {
		_, token, err := svc.Login(context.Background(), req)

		assert.Empty(t, token)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Credenciais inválidas", appErr.Message)
	}
}

func TestLogin_BlankFields(t *testing.T) {
	svc := services.NewAuthService(authConfig())

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "eighmen"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Usuário e senha são obrigatórios", appErr.Message)
}

func TestLogin_HashWinsOverPlainPassword(t *testing.T) {
	hash, err := utils.HashPassword("outra-senha")
	require.NoError(t, err)
	cfg := authConfig()
	cfg.AuthPasswordHash = hash
	svc := services.NewAuthService(cfg)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{Usuario: "eighmen", Senha: "Eighmen8"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, token, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "eighmen", Senha: "outra-senha"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
