package config

import (
	"time"

	"github.com/spf13/viper"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		Environment              Environment
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Auth struct {
		SessionSecret   string // hex-encoded signing key, auto-generated if empty
		SessionKey      string // hex-encoded encryption key, optional
		CSRFSecret      string // hex-encoded CSRF key, auto-generated if empty
		SessionLifetime time.Duration
		BcryptCost      int
		SecureCookies   bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("environment", "development")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Auth defaults
	v.SetDefault("session_secret", "")       // Auto-generated if empty
	v.SetDefault("session_key", "")          // No cookie encryption if empty
	v.SetDefault("csrf_secret", "")          // Auto-generated if empty
	v.SetDefault("session_lifetime", "720h") // 30 days
	v.SetDefault("bcrypt_cost", 10)

	env := Environment(v.GetString("ENVIRONMENT"))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			Environment:              env,
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Auth: Auth{
			SessionSecret:   v.GetString("SESSION_SECRET"),
			SessionKey:      v.GetString("SESSION_KEY"),
			CSRFSecret:      v.GetString("CSRF_SECRET"),
			SessionLifetime: v.GetDuration("SESSION_LIFETIME"),
			BcryptCost:      v.GetInt("BCRYPT_COST"),
			// Secure cookies only make sense behind HTTPS
			SecureCookies: env == EnvironmentProduction,
		},
	}
}
