// Package config handles configuration for the wellness journal client,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - LocalPath: SQLite file for per-client state (tokens, preferences) and,
//     without DatabaseDSN, the journal data set.
//   - DatabaseDSN: optional postgres:// DSN for the journal data set.
//   - SecretKey: HMAC secret for signing tokens (HS256). Do not keep the
//     development default.
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
//   - AuthLatency / APILatency: the simulated network delay of the mock
//     backend (auth calls and log CRUD respectively).
//   - SearchDebounce: idle window before a search term triggers a fetch.
//   - RefreshCheckInterval: cadence of the silent-refresh watcher.
//   - ExpiryWindow: how close to expiry an access token may get before the
//     watcher renews it.
type Config struct {
	LocalPath            string
	DatabaseDSN          string
	SecretKey            string
	AccessTokenTTL       time.Duration
	RefreshTokenTTL      time.Duration
	AuthLatency          time.Duration
	APILatency           time.Duration
	SearchDebounce       time.Duration
	RefreshCheckInterval time.Duration
	ExpiryWindow         time.Duration
}

// LoadDefaults populates c with sensible defaults.
// NOTE: SecretKey is insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.LocalPath = "wellness.db"
	c.DatabaseDSN = ""
	c.SecretKey = "dev-secret"
	c.AccessTokenTTL = 24 * time.Hour
	c.RefreshTokenTTL = 7 * 24 * time.Hour
	c.AuthLatency = 1 * time.Second
	c.APILatency = 500 * time.Millisecond
	c.SearchDebounce = 300 * time.Millisecond
	c.RefreshCheckInterval = 60 * time.Second
	c.ExpiryWindow = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if given
// via -c/-config), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
