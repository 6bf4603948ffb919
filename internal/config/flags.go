package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/wellnesslog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   path of the local SQLite file
//	-d string   postgres DSN for the journal data set
//	-s string   HMAC secret key
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LocalPath, "l", cfg.LocalPath, "path of the local SQLite file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres DSN for the journal data set")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "HMAC secret key for tokens")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
