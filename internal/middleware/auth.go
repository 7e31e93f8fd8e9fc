package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils"
)

// ErrNoSessionToken means the request carried neither a session cookie nor a bearer token.
var ErrNoSessionToken = errors.New("no session token")

// SessionConfig tells the middleware where the session token lives and how it is signed.
type SessionConfig struct {
	Secret     string
	CookieName string
}

// ReadSession extracts and validates the session token of a request.
// The session cookie is checked first, then an "Authorization: Bearer" header.
func ReadSession(c *gin.Context, cfg SessionConfig) (domain.Session, error) {
	token, err := c.Cookie(cfg.CookieName)
	if err != nil || token == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return domain.Session{}, ErrNoSessionToken
		}
		token = parts[1]
	}

	claims, err := utils.ParseAndValidateJWT(token, cfg.Secret)
	if err != nil {
		return domain.Session{}, err
	}
	if claims.Subject == "" {
		return domain.Session{}, jwt.ErrTokenInvalidClaims
	}

	session := domain.Session{Username: claims.Subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return session, nil
}

// AuthMiddleware creates a Gin middleware handler that rejects requests
// without a valid session and stores the session on the request context.
func AuthMiddleware(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		session, err := ReadSession(c, cfg)
		if err != nil {
			if errors.Is(err, ErrNoSessionToken) {
				logger.Warn("Session token missing")
			} else {
				logger.Warn("Invalid session token", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}

		enrichedLogger := logger.With(slog.String("usuario", session.Username))
		ctx := WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
