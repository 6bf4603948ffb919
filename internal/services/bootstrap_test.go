package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellnesslog/internal/dbx"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
	logsrepo "github.com/dmitrijs2005/wellnesslog/internal/repositories/logs"
	usersrepo "github.com/dmitrijs2005/wellnesslog/internal/repositories/users"
)

type failingLogs struct {
	logsrepo.Repository
}

func (failingLogs) Insert(ctx context.Context, log *models.WellnessLog) error {
	return errors.New("insert blew up")
}

func TestBootstrap_RollsBackOnSeedFailure(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	dataTx := func(ctx context.Context, fn func(u usersrepo.Repository, l logsrepo.Repository) error) error {
		return dbx.WithTx(ctx, e.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return fn(usersrepo.NewSQLiteRepository(tx), failingLogs{})
		})
	}

	err := Bootstrap(ctx, dataTx, e.logger)
	require.Error(t, err)

	// the demo user created before the log insert failed must not survive
	n, err := e.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// a later run against a healthy store seeds from scratch
	e.bootstrap(t)
	n, err = e.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
