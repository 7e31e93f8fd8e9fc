package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// sessionCtxKey is the key used to store the authenticated session in the request context.
const sessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromContext retrieves the authenticated session placed by AuthMiddleware.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	session, ok := c.Request.Context().Value(sessionCtxKey).(domain.Session)
	return session, ok
}
