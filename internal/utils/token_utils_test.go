package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("eighmen", "secret", time.Hour, "orbisx-backend")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "eighmen", claims.Subject)
	assert.Equal(t, "orbisx-backend", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateJWT("eighmen", "secret", time.Hour, "orbisx-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("eighmen", "secret", -time.Minute, "orbisx-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHelpers(t *testing.T) {
	hash, err := utils.HashPassword("Eighmen8")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("Eighmen8", hash))
	assert.False(t, utils.CheckPasswordHash("eighmen8", hash))

	assert.True(t, utils.EqualConstantTime("eighmen", "eighmen"))
	assert.False(t, utils.EqualConstantTime("eighmen", "eighmen "))
}
