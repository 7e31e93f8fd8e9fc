package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/cmd/docs"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiPrefix = "/api"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to build login rate limiter: %w", err)
	}

	session := middleware.SessionConfig{Secret: cfg.JWTSecret, CookieName: cfg.SessionCookieName}
	api := r.Group(apiPrefix)

	// Public authentication routes
	registerAuthRoutes(api, services.Auth, session, cfg.IsProduction, middleware.RateLimit(loginLimiter))

	// Everything else requires a session
	setupDataRoutes(api, session, services)

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(spaFallback(cfg.StaticDir))
	return nil
}

// setupDataRoutes applies AuthMiddleware and delegates to the per-resource registrations.
func setupDataRoutes(api *gin.RouterGroup, session middleware.SessionConfig, services *portssvc.ServiceContainer) {
	data := api.Group("", middleware.AuthMiddleware(session))

	registerEntryRoutes(data, services.Entry)
	registerBudgetRoutes(data, services.Budget)
	registerContractRoutes(data, services.Contract)
	registerTaskRoutes(data, services.Task)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = apiPrefix
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// spaFallback serves the built frontend: unknown /api paths get a JSON 404,
// existing files under staticDir are served as-is and any other path gets
// index.html so client-side routing works.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == apiPrefix || strings.HasPrefix(reqPath, apiPrefix+"/") {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Rota não encontrada"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Rota não encontrada"})
			return
		}

		// path.Clean on a rooted path cannot climb above the root
		rel := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
		if rel != "" {
			candidate := filepath.Join(staticDir, filepath.FromSlash(rel))
			if isRegularFile(candidate) {
				c.File(candidate)
				return
			}
		}

		// read directly: http.ServeFile redirects request paths ending in /index.html
		if page, err := os.ReadFile(filepath.Join(staticDir, "index.html")); err == nil {
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
			return
		}
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Página não encontrada"})
	}
}

func isRegularFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
