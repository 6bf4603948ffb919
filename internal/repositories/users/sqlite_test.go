package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{
		ID:           "1",
		Email:        "demo@example.com",
		Name:         "Demo User",
		PasswordHash: []byte("$2a$10$hash"),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, r.Create(ctx, u))

	byEmail, err := r.GetByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", byEmail.ID)
	assert.Equal(t, "Demo User", byEmail.Name)
	assert.Equal(t, []byte("$2a$10$hash"), byEmail.PasswordHash)
	assert.WithinDuration(t, u.CreatedAt, byEmail.CreatedAt, time.Microsecond)

	byID, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", byID.Email)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{ID: "1", Email: "demo@example.com", PasswordHash: []byte("h"), CreatedAt: time.Now()}
	require.NoError(t, r.Create(ctx, u))

	dup := &models.User{ID: "2", Email: "demo@example.com", PasswordHash: []byte("h"), CreatedAt: time.Now()}
	assert.Error(t, r.Create(ctx, dup))
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCount(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, r.Create(ctx, &models.User{ID: "1", Email: "a@b.c", PasswordHash: []byte("h"), CreatedAt: time.Now()}))
	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
