package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/handlers"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/storage"
)

// @title OrbisX Backend API
// @version 1.0
// @description Back-office API for financial entries, budgets, contracts and tasks.

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := storage.Migrate(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeDB, err := storage.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	files := filestore.NewPDFStore(cfg.UploadDir, cfg.MaxUploadBytes)
	serviceContainer := services.NewServiceContainer(cfg, repos, files)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Multipart parts beyond this stay on disk; the store enforces the real limit.
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.Recovery())

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
