package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.MonthlyDue.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "console", cfg.MailProvider)
	assert.Equal(t, "Dues Manager", cfg.MailFromName)
	assert.Equal(t, 5, cfg.BulkConcurrency)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", "SQL")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:dues.db")
	t.Setenv("MONTHLY_DUE", "12.50")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("BULK_CONCURRENCY", "0")
	t.Setenv("MAIL_FROM_NAME", "Treasurer")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, cfg.StoreBackend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:dues.db", cfg.DBDSN)
	assert.True(t, cfg.MonthlyDue.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 1, cfg.BulkConcurrency)
	assert.Equal(t, "Treasurer", cfg.MailFromName)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("sheets backend needs an id", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "sheets")
		t.Setenv("SHEETS_ID", "")
		_, err := load(viper.New())
		assert.Error(t, err)
	})
	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "csv")
		_, err := load(viper.New())
		assert.Error(t, err)
	})
	t.Run("monthly due", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "memory")
		t.Setenv("MONTHLY_DUE", "ten")
		_, err := load(viper.New())
		assert.Error(t, err)
	})
}
