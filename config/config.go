package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backend names.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Storage configuration
	StorageBackend string
	DataDir        string

	// Redis configuration (used when StorageBackend is "redis")
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Fake network delay applied to login/signup, matching the client
	// prototype's fixed timeouts.
	SimulatedLatency time.Duration

	// CORS
	AllowedOrigins []string
}

// LoadConfig creates a Config from environment variables or, in production,
// Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        0,
		RedisURL:       os.Getenv("REDIS_URL"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	latencyMS, err := strconv.Atoi(getEnv("SIMULATED_LATENCY_MS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATED_LATENCY_MS: %w", err)
	}
	cfg.SimulatedLatency = time.Duration(latencyMS) * time.Millisecond

	// Production never takes secrets from plain env vars.
	if IsProduction() {
		if s := readSecret("jwt_secret"); s != "" {
			cfg.JWTSecret = s
		}
		if s := readSecret("redis_password"); s != "" {
			cfg.RedisPassword = s
		}
		if s := readSecret("redis_url"); s != "" {
			cfg.RedisURL = s
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RedisAddr returns the host:port pair for the Redis backend.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
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
