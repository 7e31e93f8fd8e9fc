package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

var sessionCfg = middleware.SessionConfig{Secret: secret, CookieName: "orbisx_session"}

func newRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func token(t *testing.T, username string, expiry time.Duration) string {
	t.Helper()
	tok, _, err := utils.GenerateJWT(username, secret, expiry, "orbisx-test")
	require.NoError(t, err)
	return tok
}

func whoami(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.String(http.StatusInternalServerError, "no session")
		return
	}
	c.String(http.StatusOK, session.Username)
}

func TestAuthMiddleware_AcceptsCookie(t *testing.T) {
	r := newRouter(t, middleware.AuthMiddleware(sessionCfg), whoami)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "orbisx_session", Value: token(t, "eighmen", time.Hour)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "eighmen", w.Body.String())
}

func TestAuthMiddleware_AcceptsBearerHeader(t *testing.T) {
	r := newRouter(t, middleware.AuthMiddleware(sessionCfg), whoami)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token(t, "eighmen", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "eighmen", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage", "Bearer not-a-jwt"},
		{"expired", "Bearer " + token(t, "eighmen", -time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, middleware.AuthMiddleware(sessionCfg), whoami)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Não autorizado"}`, w.Body.String())
		})
	}
}

func TestReadSession_CookieWinsOverHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "orbisx_session", Value: token(t, "from-cookie", time.Hour)})
	c.Request.Header.Set("Authorization", "Bearer "+token(t, "from-header", time.Hour))

	session, err := middleware.ReadSession(c, sessionCfg)

	require.NoError(t, err)
	assert.Equal(t, "from-cookie", session.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestReadSession_NoToken(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := middleware.ReadSession(c, sessionCfg)

	assert.ErrorIs(t, err, middleware.ErrNoSessionToken)
}

func TestRecovery_ReturnsGeneric500(t *testing.T) {
	r := newRouter(t, middleware.Recovery(), func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestStructuredLogging_AddsRequestIDAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(t, middleware.StructuredLoggingMiddleware(logger), func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	requestID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var completed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &completed))
	assert.Equal(t, "Request completed", completed["msg"])
	assert.Equal(t, requestID, completed["request_id"])
	assert.Equal(t, float64(http.StatusNoContent), completed["status"])
}

func TestRateLimit_Returns429(t *testing.T) {
	limiter, err := middleware.NewIPRateLimiter("1-M")
	require.NoError(t, err)
	r := newRouter(t, middleware.RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Muitas tentativas. Tente novamente mais tarde."}`, second.Body.String())
}
