// Package settings is the local persistence gateway: a small key/value store
// for the token pair and UI preferences. Missing keys read back as empty
// strings so callers can fall back to defaults instead of failing.
package settings

import "context"

// Well-known keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyTheme        = "theme"
	KeyPanelWidth   = "panel_width"
)

type Repository interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
