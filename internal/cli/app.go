// Package cli is the interactive terminal frontend of the wellness journal.
// It drives the store through a small REPL: auth commands while signed out,
// journal commands while signed in.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/wellnesslog/internal/config"
	"github.com/dmitrijs2005/wellnesslog/internal/database"
	"github.com/dmitrijs2005/wellnesslog/internal/logging"
	"github.com/dmitrijs2005/wellnesslog/internal/services"
	"github.com/dmitrijs2005/wellnesslog/internal/store"
)

type App struct {
	config *config.Config
	db     *database.DB
	store  *store.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := database.Open(ctx, cfg.LocalPath, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := services.Bootstrap(ctx, db.DataTx, log); err != nil {
		db.Close()
		return nil, err
	}

	authSvc := services.NewAuthService(db.Users, db.Settings, cfg, log)
	logSvc := services.NewLogService(db.Logs, cfg, log)
	st := store.New(authSvc, logSvc, db.Settings, cfg, log)

	return &App{
		config: cfg,
		db:     db,
		store:  st,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Session.Status == store.SessionAuthenticated
}
