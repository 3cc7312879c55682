package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/azurecafe/cafe-service/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "admin123", cfg.Auth.AdminPassword)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "Cafe Azure", cfg.Cafe.Name)
	assert.Equal(t, 10000.0, cfg.Cafe.InitialBudget)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.False(t, cfg.Receipts.Enabled)
	assert.Equal(t, "receipts", cfg.Receipts.Dir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CAFE_DATA_DIR", "/var/lib/cafe")
	t.Setenv("CAFE_ADMIN_USERNAME", "boss")
	t.Setenv("CAFE_SESSION_TTL", "30m")
	t.Setenv("CAFE_BCRYPT_COST", "12")
	t.Setenv("CAFE_INITIAL_BUDGET", "2500.5")
	t.Setenv("CAFE_LOG_PRETTY", "false")
	t.Setenv("CAFE_RECEIPTS_ENABLED", "true")

	cfg := config.Load()

	assert.Equal(t, "/var/lib/cafe", cfg.Storage.DataDir)
	assert.Equal(t, "boss", cfg.Auth.AdminUsername)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 2500.5, cfg.Cafe.InitialBudget)
	assert.False(t, cfg.Logging.Pretty)
	assert.True(t, cfg.Receipts.Enabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CAFE_SESSION_TTL", "soon")
	t.Setenv("CAFE_BCRYPT_COST", "high")
	t.Setenv("CAFE_INITIAL_BUDGET", "lots")

	cfg := config.Load()

	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10000.0, cfg.Cafe.InitialBudget)
}
