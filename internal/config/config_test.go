package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/m/internal/finance"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "STORE_DRIVER", "DATABASE_DSN", "TIMEZONE", "LEGACY_IMPORT", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "orderdesk.db", cfg.DatabaseDSN)
	assert.Equal(t, time.Local, cfg.Location)
	assert.True(t, cfg.Commission.MarketplaceRate.Equal(finance.DefaultPolicy.MarketplaceRate))
	assert.True(t, cfg.Commission.CardRate.Equal(finance.DefaultPolicy.CardRate))
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "orderdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_port: "9090"
timezone: UTC
commission:
  marketplace_rate: "0.30"
  card_rate: "1.5"
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("STORE_DRIVER", "memory")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "0.3", cfg.Commission.MarketplaceRate.String())
	// Out of range rates keep the default.
	assert.True(t, cfg.Commission.CardRate.Equal(finance.DefaultPolicy.CardRate))
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "orderdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"9090\"\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "7070")

	assert.Equal(t, "7070", Load().HTTPPort)
}
