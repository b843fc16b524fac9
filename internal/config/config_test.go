package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "products", cfg.DynamoTables.Products)
	assert.Equal(t, "sales", cfg.DynamoTables.Sales)
	assert.Equal(t, "chat_history", cfg.DynamoTables.ChatHistory)
	assert.Equal(t, time.Hour, cfg.CheckInterval)
	assert.InDelta(t, 7, cfg.Thresholds.FastMovingMaxDays, 1e-9)
	assert.Equal(t, 20, cfg.Thresholds.FastMovingMaxStock)
	assert.InDelta(t, 20, cfg.Thresholds.SlowMovingMinDays, 1e-9)
	assert.Equal(t, 10, cfg.Thresholds.SlowMovingMinStock)
	assert.InDelta(t, 1.5, cfg.Thresholds.ReorderFactor, 1e-9)
	assert.Equal(t, 15, cfg.Thresholds.LowStock)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("CHECK_INTERVAL_SECONDS", "120")
	t.Setenv("REORDER_FACTOR", "2.0")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 2*time.Minute, cfg.CheckInterval)
	assert.InDelta(t, 2.0, cfg.Thresholds.ReorderFactor, 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("CHECK_INTERVAL_SECONDS", "soon")
	t.Setenv("FAST_MOVING_MAX_DAYS", "a week")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.CheckInterval)
	assert.InDelta(t, 7, cfg.Thresholds.FastMovingMaxDays, 1e-9)
}
