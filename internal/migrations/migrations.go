// Package migrations embeds the goose SQL migrations. The SQL is kept
// dialect-neutral so the data set runs unchanged on sqlite and postgres.
package migrations

import "embed"

const (
	// LocalDir holds per-client state: settings (tokens, preferences).
	LocalDir = "local"
	// DataDir holds the journal data set: users and wellness logs.
	DataDir = "data"
)

//go:embed local/*.sql
var Local embed.FS

//go:embed data/*.sql
var Data embed.FS
