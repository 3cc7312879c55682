// Package config provides configuration management for the cafe service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Storage  StorageConfig
	Auth     AuthConfig
	Cafe     CafeConfig
	Logging  LoggingConfig
	Receipts ReceiptsConfig
}

// StorageConfig holds flat-file storage configuration.
type StorageConfig struct {
	DataDir string
}

// AuthConfig holds authentication and session configuration.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecretKey  string
	SessionTTL    time.Duration
	BcryptCost    int
}

// CafeConfig holds cafe bootstrap configuration.
type CafeConfig struct {
	Name          string
	InitialBudget float64
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// ReceiptsConfig holds order receipt QR configuration.
type ReceiptsConfig struct {
	Enabled bool
	Dir     string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Storage: StorageConfig{
			DataDir: getEnv("CAFE_DATA_DIR", "data"),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("CAFE_ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("CAFE_ADMIN_PASSWORD", "admin123"),
			JWTSecretKey:  getEnv("CAFE_JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			SessionTTL:    getEnvDuration("CAFE_SESSION_TTL", 8*time.Hour),
			BcryptCost:    getEnvInt("CAFE_BCRYPT_COST", 10),
		},
		Cafe: CafeConfig{
			Name:          getEnv("CAFE_NAME", "Cafe Azure"),
			InitialBudget: getEnvFloat("CAFE_INITIAL_BUDGET", 10000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("CAFE_LOG_LEVEL", "info"),
			Pretty: getEnvBool("CAFE_LOG_PRETTY", true),
		},
		Receipts: ReceiptsConfig{
			Enabled: getEnvBool("CAFE_RECEIPTS_ENABLED", false),
			Dir:     getEnv("CAFE_RECEIPTS_DIR", "receipts"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
