package logs

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
CREATE TABLE wellness_logs (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  mood TEXT NOT NULL,
  sleep_duration REAL NOT NULL,
  activity_notes TEXT NOT NULL,
  log_date TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func seedLog(t *testing.T, r *SQLiteRepository, id, userID, notes, date string, createdAt time.Time) {
	t.Helper()
	err := r.Insert(context.Background(), &models.WellnessLog{
		ID:            id,
		Mood:          models.MoodHappy,
		SleepDuration: 7,
		ActivityNotes: notes,
		Date:          date,
		UserID:        userID,
		CreatedAt:     createdAt,
	})
	require.NoError(t, err)
}

func ids(logs []models.WellnessLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.ID)
	}
	return out
}

func TestInsertAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	in := &models.WellnessLog{
		ID:            "1",
		Mood:          models.MoodFocused,
		SleepDuration: 7.5,
		ActivityNotes: "Ran 5k",
		Date:          "2024-03-01",
		UserID:        "u1",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, r.Insert(ctx, in))

	got, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.MoodFocused, got.Mood)
	assert.Equal(t, 7.5, got.SleepDuration)
	assert.Equal(t, "Ran 5k", got.ActivityNotes)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, "u1", got.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_ScopedAndOrdered(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now()
	seedLog(t, r, "a", "u1", "workout", "2024-01-13", base)
	seedLog(t, r, "b", "u1", "meditation", "2024-01-15", base.Add(time.Second))
	seedLog(t, r, "c", "u1", "reading", "2024-01-14", base.Add(2*time.Second))
	seedLog(t, r, "d", "u2", "someone else", "2024-01-16", base.Add(3*time.Second))

	got, err := r.List(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestList_TieBreakInsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now()
	seedLog(t, r, "first", "u1", "one", "2024-01-15", base)
	seedLog(t, r, "second", "u1", "two", "2024-01-15", base.Add(time.Second))

	got, err := r.List(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ids(got))
}

func TestList_SearchCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now()
	seedLog(t, r, "a", "u1", "Had a great WORKOUT session", "2024-01-15", base)
	seedLog(t, r, "b", "u1", "quiet day", "2024-01-14", base.Add(time.Second))

	got, err := r.List(ctx, "u1", "workout")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))

	got, err = r.List(ctx, "u1", "xyz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedLog(t, r, "a", "u1", "old notes", "2024-01-15", time.Now())

	err := r.Update(ctx, &models.WellnessLog{
		ID:            "a",
		Mood:          models.MoodTired,
		SleepDuration: 4,
		ActivityNotes: "new notes",
		Date:          "2024-01-16",
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.MoodTired, got.Mood)
	assert.Equal(t, 4.0, got.SleepDuration)
	assert.Equal(t, "new notes", got.ActivityNotes)
	assert.Equal(t, "2024-01-16", got.Date)
}

func TestUpdate_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Update(context.Background(), &models.WellnessLog{ID: "missing", Mood: models.MoodHappy})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteByID_SecondDeleteFails(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedLog(t, r, "a", "u1", "notes", "2024-01-15", time.Now())

	require.NoError(t, r.DeleteByID(ctx, "a"))
	assert.ErrorIs(t, r.DeleteByID(ctx, "a"), common.ErrorNotFound)
}
