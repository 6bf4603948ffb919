package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellnesslog/internal/models"
	"github.com/dmitrijs2005/wellnesslog/internal/repositories/settings"
)

func TestOpen_LocalSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wellness.db")

	db, err := Open(ctx, path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// migrated tables accept writes through the repositories
	require.NoError(t, db.Settings.Set(ctx, settings.KeyTheme, "dark"))
	v, err := db.Settings.Get(ctx, settings.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	u := &models.User{ID: "1", Email: "a@b.c", PasswordHash: []byte("h"), CreatedAt: time.Now()}
	require.NoError(t, db.Users.Create(ctx, u))

	require.NoError(t, db.Logs.Insert(ctx, &models.WellnessLog{
		ID: "l1", Mood: models.MoodHappy, SleepDuration: 8,
		ActivityNotes: "n", Date: "2024-01-15", UserID: "1", CreatedAt: time.Now(),
	}))
	got, err := db.Logs.List(ctx, "1", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wellness.db")

	db, err := Open(ctx, path, "")
	require.NoError(t, err)
	require.NoError(t, db.Settings.Set(ctx, settings.KeyAccessToken, "tok"))
	require.NoError(t, db.Close())

	// migrations are idempotent across opens and data persists
	db2, err := Open(ctx, path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	v, err := db2.Settings.Get(ctx, settings.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://u:p@host:5432/db"))
	assert.True(t, isPostgres("postgresql://host/db"))
	assert.False(t, isPostgres(""))
	assert.False(t, isPostgres("wellness.db"))
}
