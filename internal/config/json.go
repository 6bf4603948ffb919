package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wellnesslog/internal/flagx"
	"github.com/dmitrijs2005/wellnesslog/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "300ms"
// or as integer nanoseconds. After parsing, set values are copied into the
// runtime Config.
type JsonConfig struct {
	LocalPath            string         `json:"local_path"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	AccessTokenTTL       timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL      timex.Duration `json:"refresh_token_ttl"`
	AuthLatency          timex.Duration `json:"auth_latency"`
	APILatency           timex.Duration `json:"api_latency"`
	SearchDebounce       timex.Duration `json:"search_debounce"`
	RefreshCheckInterval timex.Duration `json:"refresh_check_interval"`
	ExpiryWindow         timex.Duration `json:"expiry_window"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Keys missing from the file keep their current values. Panics on read or
// unmarshal errors, matching the fail-fast startup of the rest of the loader.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LocalPath != "" {
		cfg.LocalPath = jc.LocalPath
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenTTL.Duration != 0 {
		cfg.AccessTokenTTL = jc.AccessTokenTTL.Duration
	}
	if jc.RefreshTokenTTL.Duration != 0 {
		cfg.RefreshTokenTTL = jc.RefreshTokenTTL.Duration
	}
	if jc.AuthLatency.Duration != 0 {
		cfg.AuthLatency = jc.AuthLatency.Duration
	}
	if jc.APILatency.Duration != 0 {
		cfg.APILatency = jc.APILatency.Duration
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.RefreshCheckInterval.Duration != 0 {
		cfg.RefreshCheckInterval = jc.RefreshCheckInterval.Duration
	}
	if jc.ExpiryWindow.Duration != 0 {
		cfg.ExpiryWindow = jc.ExpiryWindow.Duration
	}
}
