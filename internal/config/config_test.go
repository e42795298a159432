package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STATE_DIR", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	require.Equal(t, cfg.APIBaseURL, cfg.ConsultBaseURL)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 5*time.Minute, cfg.TipsCacheTTL)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, filepath.Join(dir, "state.db"), cfg.Storage.DSN)
	require.Equal(t, filepath.Join(dir, "reports"), cfg.ReportDir)
	require.Equal(t, 60, cfg.DevAPI.JWTExpirationMinutes)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STATE_DIR", t.TempDir())
	t.Setenv("DREPALIFE_API_URL", "https://api.drepalife.test")
	t.Setenv("DREPALIFE_CONSULT_URL", "https://consult.drepalife.test")
	t.Setenv("TIPS_CACHE_MINUTES", "1")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://api.drepalife.test", cfg.APIBaseURL)
	require.Equal(t, "https://consult.drepalife.test", cfg.ConsultBaseURL)
	require.Equal(t, time.Minute, cfg.TipsCacheTTL)
	require.Equal(t, "redis", cfg.Storage.Driver)
	require.Equal(t, 3, cfg.Storage.RedisDB)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("STATE_DIR", t.TempDir())

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "HTTP_TIMEOUT_SECONDS")
	})

	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "leveldb")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "STORAGE_DRIVER")
	})

	t.Run("mysql without dsn", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "STORAGE_DSN")
	})
}
