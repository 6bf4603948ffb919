// Package database opens the storage backends and wires the repositories.
// Per-client state (tokens, preferences) always lives in a local SQLite file;
// the journal data set lives either in the same file or, when the configured
// DSN has a postgres scheme, in PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/wellnesslog/internal/dbx"
	"github.com/dmitrijs2005/wellnesslog/internal/migrations"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/logs"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/settings"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB bundles the open handles and the repositories bound to them.
type DB struct {
	local    *sql.DB
	data     *sql.DB
	postgres bool

	Users    users.Repository
	Logs     logs.Repository
	Settings settings.Repository
}

// Open opens the local store at localPath, optionally the data store at
// dataDSN (postgres), runs the migrations, and builds the repositories.
// An empty dataDSN keeps the journal data in the local file.
func Open(ctx context.Context, localPath, dataDSN string) (*DB, error) {
	local, err := sql.Open("sqlite", localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local db: %w", err)
	}

	if err := migrate(ctx, local, migrations.LocalDir, "sqlite3", "goose_local_version"); err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("local migrations: %w", err)
	}

	d := &DB{local: local, Settings: settings.NewSQLiteRepository(local)}

	if isPostgres(dataDSN) {
		data, err := sql.Open("pgx", dataDSN)
		if err != nil {
			_ = local.Close()
			return nil, fmt.Errorf("failed to open data db: %w", err)
		}
		if err := migrate(ctx, data, migrations.DataDir, "postgres", "goose_data_version"); err != nil {
			_ = local.Close()
			_ = data.Close()
			return nil, fmt.Errorf("data migrations: %w", err)
		}
		d.data = data
		d.postgres = true
		d.Users = users.NewPostgresRepository(data)
		d.Logs = logs.NewPostgresRepository(data)
		return d, nil
	}

	if err := migrate(ctx, local, migrations.DataDir, "sqlite3", "goose_data_version"); err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("data migrations: %w", err)
	}
	d.data = local
	d.Users = users.NewSQLiteRepository(local)
	d.Logs = logs.NewSQLiteRepository(local)
	return d, nil
}

// Close closes the underlying handles.
func (d *DB) Close() error {
	var err error
	if d.data != nil && d.data != d.local {
		err = d.data.Close()
	}
	if cerr := d.local.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// DataTx runs fn inside a single transaction on the data store, with
// repositories bound to that transaction.
func (d *DB) DataTx(ctx context.Context, fn func(u users.Repository, l logs.Repository) error) error {
	return dbx.WithTx(ctx, d.data, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if d.postgres {
			return fn(users.NewPostgresRepository(tx), logs.NewPostgresRepository(tx))
		}
		return fn(users.NewSQLiteRepository(tx), logs.NewSQLiteRepository(tx))
	})
}

// Local exposes the local handle for transaction helpers.
func (d *DB) Local() *sql.DB { return d.local }

// Data exposes the data handle for transaction helpers.
func (d *DB) Data() *sql.DB { return d.data }

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// goose keeps package-level state; runs are sequential, one version table
// per migration set.
func migrate(ctx context.Context, db *sql.DB, dir, dialect, table string) error {
	switch dir {
	case migrations.LocalDir:
		goose.SetBaseFS(migrations.Local)
	case migrations.DataDir:
		goose.SetBaseFS(migrations.Data)
	default:
		return fmt.Errorf("unknown migration set %q", dir)
	}
	defer goose.SetBaseFS(nil)

	goose.SetTableName(table)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}
