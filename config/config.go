package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// OfflineCachePath, when set, is the SQLite file used as a local
	// fallback store if the hosted database is unreachable.
	OfflineCachePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// DeepSeek (AI meal analysis) configuration
	DeepSeekAPIKey string
	DeepSeekAPIURL string

	// Open Food Facts (barcode lookup) configuration
	OpenFoodFactsURL string

	// CORS
	AllowedOrigins []string

	// AI route rate limiting
	AIRateLimit int
}

// LoadConfig creates a new Config instance from environment variables,
// reading secret values from files in production.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	loadCommon(cfg)
	if env == Production {
		loadSecrets(cfg)
	} else {
		cfg.DBPassword = os.Getenv("DB_PASSWORD")
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
		cfg.DeepSeekAPIKey = os.Getenv("DEEPSEEK_API_KEY")
	}

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadCommon(cfg *Config) {
	cfg.ServerPort = getenvDefault("SERVER_PORT", "8080")
	cfg.ServerHost = getenvDefault("SERVER_HOST", "0.0.0.0")

	cfg.DBHost = getenvDefault("DB_HOST", "localhost")
	cfg.DBPort = getenvDefault("DB_PORT", "5432")
	cfg.DBUser = getenvDefault("DB_USER", "macroplate")
	cfg.DBName = getenvDefault("DB_NAME", "macroplate")
	cfg.DBSSLMode = getenvDefault("DB_SSL_MODE", "disable")
	cfg.OfflineCachePath = os.Getenv("OFFLINE_CACHE_PATH")

	cfg.RedisHost = getenvDefault("REDIS_HOST", "localhost")
	cfg.RedisPort = getenvDefault("REDIS_PORT", "6379")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	cfg.DeepSeekAPIURL = getenvDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions")
	cfg.OpenFoodFactsURL = getenvDefault("OPENFOODFACTS_URL", "https://world.openfoodfacts.org")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	cfg.AIRateLimit = 30
	if s := os.Getenv("AI_RATE_LIMIT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.AIRateLimit = n
		}
	}
}

// loadSecrets reads secret values from Docker secret files.
func loadSecrets(cfg *Config) {
	cfg.DBPassword = readSecret("db_password")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.DeepSeekAPIKey = readSecret("deepseek_api_key")
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
