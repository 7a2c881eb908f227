package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Ledger   LedgerConfig
	Roles    RoleKeyConfig
	SeedDemo bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret           string
	SessionTokenMins int
}

// LedgerConfig selects and parameterizes the ledger collaborator.
// Mode "mock" uses the in-memory fake, "gateway" the network-backed
// client.
type LedgerConfig struct {
	Mode          string
	GatewayURL    string
	ModuleAddress string
	Timeout       time.Duration
}

// RoleKeyConfig holds the shared role keys the identity collaborator
// hands out to providers and applicants.
type RoleKeyConfig struct {
	ProviderKey  string
	ApplicantKey string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	ledgerCfg, err := loadLedgerConfig(appMode)
	if err != nil {
		return nil, err
	}

	seedDemo, _ := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Ledger:   ledgerCfg,
		Roles:    loadRoleKeyConfig(),
		SeedDemo: seedDemo,
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, LEDGER: %s]", appMode, ledgerCfg.Mode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "scholarchain"),
	}
}

// loadJWTConfig loads session token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	sessionMins, _ := strconv.Atoi(getEnv("SESSION_TOKEN_MINUTES", "60"))

	return JWTConfig{
		Secret:           getEnv(prefix+"JWT_SECRET", "default_secret"),
		SessionTokenMins: sessionMins,
	}
}

// loadLedgerConfig loads ledger collaborator config
func loadLedgerConfig(mode string) (LedgerConfig, error) {
	defaultMode := "mock"
	if mode == "prod" {
		defaultMode = "gateway"
	}

	ledgerMode := strings.TrimSpace(getEnv("LEDGER_MODE", defaultMode))
	if ledgerMode != "mock" && ledgerMode != "gateway" {
		return LedgerConfig{}, fmt.Errorf("invalid LEDGER_MODE: '%s' (must be 'mock' or 'gateway')", ledgerMode)
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("LEDGER_TIMEOUT_SECONDS", "10"))

	cfg := LedgerConfig{
		Mode:          ledgerMode,
		GatewayURL:    getEnv("LEDGER_GATEWAY_URL", "http://localhost:8080"),
		ModuleAddress: getEnv("LEDGER_MODULE_ADDRESS", ""),
		Timeout:       time.Duration(timeoutSecs) * time.Second,
	}

	if ledgerMode == "gateway" && cfg.ModuleAddress == "" {
		return LedgerConfig{}, fmt.Errorf("LEDGER_MODULE_ADDRESS is required when LEDGER_MODE is 'gateway'")
	}

	return cfg, nil
}

// loadRoleKeyConfig loads the wallet role keys. Defaults are the
// well-known demo keys.
func loadRoleKeyConfig() RoleKeyConfig {
	return RoleKeyConfig{
		ProviderKey:  getEnv("PROVIDER_ROLE_KEY", "0x74b5179e5a25a09620e85ffe50d1e06040e916e343fc7c2363321b379ce5ca19"),
		ApplicantKey: getEnv("APPLICANT_ROLE_KEY", "0xf4057e68dfbce2d354d338f26aa2fd4aa648b4efbbe44fc5b11a2b5fcfe39767"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://app.scholarchain.io"
	}
	return origins
}
