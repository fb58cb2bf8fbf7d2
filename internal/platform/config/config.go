package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`

	// Contracts API
	ContractsAPIURL     string        `mapstructure:"CONTRACTS_API_URL" validate:"required,url"`
	ContractsAPITimeout time.Duration `mapstructure:"CONTRACTS_API_TIMEOUT" validate:"gt=0"`
	ContractsAPIKey     string        `mapstructure:"CONTRACTS_API_KEY"`

	// Service tokens signed with the contracts API secret
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTIssuer         string        `mapstructure:"JWT_ISSUER"`
	JWTExpiryDuration time.Duration `mapstructure:"JWT_EXPIRY_DURATION" validate:"gt=0"`

	// Export history store; empty disables it
	DatabaseURL    string `mapstructure:"PGSQL_URL" validate:"omitempty,url"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	ExportRateLimit string `mapstructure:"EXPORT_RATE_LIMIT" validate:"required"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL" validate:"required,url"`

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT" validate:"omitempty,url"`

	// Google Sheets publishing; an empty key file disables it
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	GoogleSheetsShareDomain  string `mapstructure:"GOOGLE_SHEETS_SHARE_DOMAIN" validate:"omitempty,fqdn"`
}

// HistoryEnabled reports whether exports are recorded in PostgreSQL.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// SheetsEnabled reports whether reports can be published to Google Sheets.
func (c *Config) SheetsEnabled() bool {
	return c.GoogleServiceAccountFile != ""
}

var keys = []string{
	"PORT", "IS_PRODUCTION",
	"CONTRACTS_API_URL", "CONTRACTS_API_TIMEOUT", "CONTRACTS_API_KEY",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRY_DURATION",
	"PGSQL_URL", "MIGRATIONS_PATH",
	"EXPORT_RATE_LIMIT", "FRONTEND_BASE_URL",
	"POSTHOG_API_KEY", "POSTHOG_ENDPOINT",
	"GOOGLE_SERVICE_ACCOUNT_FILE", "GOOGLE_SHEETS_SHARE_DOMAIN",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return Load(viper.New())
}

// Load reads the configuration through v, applying defaults and validating the result.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CONTRACTS_API_URL", "http://localhost:3001")
	v.SetDefault("CONTRACTS_API_TIMEOUT", "30s")
	v.SetDefault("JWT_ISSUER", "contracts-api")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("EXPORT_RATE_LIMIT", "30-M")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper knows about when unmarshalling.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.ContractsAPIURL = strings.TrimRight(cfg.ContractsAPIURL, "/")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer token authentication is disabled.")
	}
	if !cfg.HistoryEnabled() {
		log.Println("Warning: PGSQL_URL not set. Export history is disabled.")
	}
	return cfg, nil
}
