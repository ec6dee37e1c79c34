package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}

	switch cfg.StorageBackend {
	case StorageFile:
		if cfg.DataDir == "" {
			return ValidationError{Field: "DATA_DIR", Message: "required for the file storage backend"}
		}
	case StorageRedis:
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			return ValidationError{Field: "REDIS_HOST", Message: "redis backend needs REDIS_URL or REDIS_HOST/REDIS_PORT"}
		}
	default:
		return ValidationError{Field: "STORAGE_BACKEND", Message: fmt.Sprintf("unknown backend %q", cfg.StorageBackend)}
	}

	if IsProduction() && (cfg.JWTSecret == "" || cfg.JWTSecret == "dev-secret") {
		return ValidationError{Field: "JWT_SECRET", Message: "a real secret is required in production"}
	}

	return nil
}
