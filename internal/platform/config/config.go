package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultJWTSecret   = "orbisx-dev-secret-change-me"
	defaultJWTExpiry   = 12 * time.Hour
	defaultJWTIssuer   = "orbisx-backend"
	defaultMaxUpload   = 16 << 20
	defaultCookieName  = "orbisx_session"
	defaultAuthUser    = "eighmen"
	defaultAuthPass    = "Eighmen8"
	defaultLoginLimit  = "5-M"
	defaultCORSOrigins = "http://localhost:5173"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	UploadDir      string
	MaxUploadBytes int64
	StaticDir      string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SessionCookieName string

	// The single login accepted by the API. A bcrypt hash, when set, wins
	// over the plain password.
	AuthUsername     string
	AuthPassword     string
	AuthPasswordHash string

	CORSAllowedOrigins []string
	LoginRateLimit     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "database/app.db")
	v.SetDefault("UPLOAD_DIR", "uploads/contratos")
	v.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUpload)
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("SESSION_COOKIE_NAME", defaultCookieName)
	v.SetDefault("AUTH_USERNAME", defaultAuthUser)
	v.SetDefault("AUTH_PASSWORD", defaultAuthPass)
	v.SetDefault("AUTH_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("LOGIN_RATE_LIMIT", defaultLoginLimit)

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		UploadDir:         v.GetString("UPLOAD_DIR"),
		MaxUploadBytes:    v.GetInt64("MAX_UPLOAD_BYTES"),
		StaticDir:         v.GetString("STATIC_DIR"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		AuthUsername:      v.GetString("AUTH_USERNAME"),
		AuthPassword:      v.GetString("AUTH_PASSWORD"),
		AuthPasswordHash:  v.GetString("AUTH_PASSWORD_HASH"),
		LoginRateLimit:    v.GetString("LOGIN_RATE_LIMIT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %q or %q)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || expiry <= 0 {
		expiry = defaultJWTExpiry
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, expiry.String())
	}
	cfg.JWTExpiryDuration = expiry

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = defaultCookieName
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUpload
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = defaultLoginLimit
	}
	if cfg.AuthUsername == "" || (cfg.AuthPassword == "" && cfg.AuthPasswordHash == "") {
		return nil, fmt.Errorf("AUTH_USERNAME and AUTH_PASSWORD (or AUTH_PASSWORD_HASH) must not be empty")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
