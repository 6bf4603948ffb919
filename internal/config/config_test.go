package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "wellness.db", cfg.LocalPath)
	assert.Equal(t, "", cfg.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, time.Second, cfg.AuthLatency)
	assert.Equal(t, 500*time.Millisecond, cfg.APILatency)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 60*time.Second, cfg.RefreshCheckInterval)
	assert.Equal(t, 5*time.Minute, cfg.ExpiryWindow)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("WELLNESS_LOCAL_PATH", "custom.db")
	t.Setenv("WELLNESS_SEARCH_DEBOUNCE", "150ms")
	t.Setenv("WELLNESS_EXPIRY_WINDOW", "garbage")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "custom.db", cfg.LocalPath)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	// unparsable duration falls back to the default
	assert.Equal(t, 5*time.Minute, cfg.ExpiryWindow)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_dsn": "postgres://u:p@localhost:5432/wellness",
		"secret_key": "file-secret",
		"api_latency": "50ms",
		"refresh_check_interval": 30000000000
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"test", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "postgres://u:p@localhost:5432/wellness", cfg.DatabaseDSN)
	assert.Equal(t, "file-secret", cfg.SecretKey)
	assert.Equal(t, 50*time.Millisecond, cfg.APILatency)
	assert.Equal(t, 30*time.Second, cfg.RefreshCheckInterval)
	// keys absent from the file keep their defaults
	assert.Equal(t, "wellness.db", cfg.LocalPath)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"test", "-l", "flag.db", "-s", "flag-secret", "-unrelated"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "flag.db", cfg.LocalPath)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
}
