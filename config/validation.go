package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that everything the server cannot run without is
// present. The AI key is only required in production; elsewhere the AI
// routes are disabled when it is missing.
func ValidateConfig(cfg *Config, env Environment) error {
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "must be set"}
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		return ValidationError{Field: "DB_HOST/DB_PORT", Message: "must be set"}
	}
	if cfg.DBPassword == "" && env == Production {
		return ValidationError{Field: "db_password", Message: "secret must be set in production"}
	}
	if cfg.DeepSeekAPIKey == "" && env == Production {
		return ValidationError{Field: "deepseek_api_key", Message: "secret must be set in production"}
	}
	return nil
}
