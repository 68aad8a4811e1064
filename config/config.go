package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Demo    DemoConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port string
}

// StorageConfig holds local store configuration
type StorageConfig struct {
	Path                    string // STORAGE_PATH: SQLite file backing the key-value store
	SnapshotDir             string // SNAPSHOT_DIR: where the snapshot worker writes
	SnapshotIntervalSeconds int    // SNAPSHOT_INTERVAL_SECONDS: 0 = use default (1h)
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	JWTSecret     string // JWT_SECRET: HMAC secret for session tokens
	TokenTTLHours int    // TOKEN_TTL_HOURS: session token lifetime
}

// DemoConfig holds demo-mode configuration. Demo mode enables the
// unauthenticated role-switch operation; a production build runs with it off.
type DemoConfig struct {
	Enabled      bool // DEMO_MODE: register the switch-role route and demo conveniences
	LoginDelayMS int  // LOGIN_DELAY_MS: artificial latency on login/signup (demo UX)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		},
		Storage: StorageConfig{
			Path:                    getEnv("STORAGE_PATH", "deadline.db"),
			SnapshotDir:             getEnv("SNAPSHOT_DIR", "snapshots"),
			SnapshotIntervalSeconds: getEnvInt("SNAPSHOT_INTERVAL_SECONDS", 0),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "demo-secret-change-in-production"),
			TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 168),
		},
		Demo: DemoConfig{
			Enabled:      getEnvBool("DEMO_MODE", true),
			LoginDelayMS: getEnvInt("LOGIN_DELAY_MS", 500),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
