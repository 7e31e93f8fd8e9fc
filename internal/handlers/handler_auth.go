package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
)

// authHandler handles login, logout and session checks.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	session      middleware.SessionConfig
	secureCookie bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, session middleware.SessionConfig, secureCookie bool) *authHandler {
	return &authHandler{authService: as, session: session, secureCookie: secureCookie}
}

// registerAuthRoutes sets up the public authentication routes. loginLimit
// guards the login endpoint only.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, session middleware.SessionConfig, secureCookie bool, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService, session, secureCookie)

	rg.POST("/login", loginLimit, h.login)
	rg.POST("/logout", h.logout)
	rg.GET("/check-auth", h.checkAuth)
}

// login godoc
// @Summary Log in
// @Description Checks the credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid login request")
		return
	}

	session, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, logger, err, "Login failed")
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Usuario: session.Username,
		Token:   token,
	})
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Logout realizado com sucesso"})
}

// checkAuth godoc
// @Summary Session status
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CheckAuthResponse
// @Router /check-auth [get]
func (h *authHandler) checkAuth(c *gin.Context) {
	session, err := middleware.ReadSession(c, h.session)
	if err != nil {
		c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: true, Usuario: session.Username})
}
