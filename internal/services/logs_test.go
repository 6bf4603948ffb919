package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wellnesslog/internal/common"
	"github.com/dmitrijs2005/wellnesslog/internal/models"
)

func draftLog(userID, notes, date string) models.WellnessLog {
	return models.WellnessLog{
		Mood:          models.MoodHappy,
		SleepDuration: 7.5,
		ActivityNotes: notes,
		Date:          date,
		UserID:        userID,
	}
}

func TestCreate_AssignsFreshUniqueID(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	first, err := e.logSvc.Create(ctx, draftLog("u1", "Ran 5k", "2024-03-01"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := e.logSvc.Create(ctx, draftLog("u1", "Swam", "2024-03-02"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := e.logSvc.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var matches int
	for _, entry := range entries {
		if entry.ID == first.ID {
			matches++
			assert.Equal(t, "Ran 5k", entry.ActivityNotes)
			assert.Equal(t, 7.5, entry.SleepDuration)
			assert.Equal(t, "2024-03-01", entry.Date)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestList_SortedByDateDescending(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	for _, d := range []string{"2024-01-14", "2024-01-16", "2024-01-15"} {
		_, err := e.logSvc.Create(ctx, draftLog("u1", "notes "+d, d))
		require.NoError(t, err)
	}

	entries, err := e.logSvc.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-16", entries[0].Date)
	assert.Equal(t, "2024-01-15", entries[1].Date)
	assert.Equal(t, "2024-01-14", entries[2].Date)
}

func TestList_SearchFiltersCaseInsensitively(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	_, err := e.logSvc.Create(ctx, draftLog("u1", "Morning Yoga flow", "2024-01-15"))
	require.NoError(t, err)
	_, err = e.logSvc.Create(ctx, draftLog("u1", "quiet evening", "2024-01-14"))
	require.NoError(t, err)
	_, err = e.logSvc.Create(ctx, draftLog("u2", "yoga too", "2024-01-15"))
	require.NoError(t, err)

	entries, err := e.logSvc.List(ctx, "u1", "YOGA")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Morning Yoga flow", entries[0].ActivityNotes)

	entries, err = e.logSvc.List(ctx, "u1", "xyz")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdate_ShallowMerge(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	created, err := e.logSvc.Create(ctx, draftLog("u1", "old notes", "2024-01-15"))
	require.NoError(t, err)

	notes := "new notes"
	updated, err := e.logSvc.Update(ctx, created.ID, models.LogPatch{ActivityNotes: &notes})
	require.NoError(t, err)

	// only the patched field changed
	assert.Equal(t, "new notes", updated.ActivityNotes)
	assert.Equal(t, created.Mood, updated.Mood)
	assert.Equal(t, created.SleepDuration, updated.SleepDuration)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdate_NotFoundLeavesCollectionUnchanged(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	created, err := e.logSvc.Create(ctx, draftLog("u1", "notes", "2024-01-15"))
	require.NoError(t, err)

	notes := "never applied"
	_, err = e.logSvc.Update(ctx, "missing", models.LogPatch{ActivityNotes: &notes})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	entries, err := e.logSvc.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, "notes", entries[0].ActivityNotes)
}

func TestDelete_IdempotentInEffect(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	created, err := e.logSvc.Create(ctx, draftLog("u1", "notes", "2024-01-15"))
	require.NoError(t, err)

	removed, err := e.logSvc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Equal(t, "notes", removed.ActivityNotes)

	_, err = e.logSvc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestScenario_DemoLoginAndFirstLog(t *testing.T) {
	e := setupEnv(t)
	e.bootstrap(t)
	ctx := context.Background()

	pair, err := e.auth.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	created, err := e.logSvc.Create(ctx, models.WellnessLog{
		Mood:          models.MoodHappy,
		SleepDuration: 7.5,
		ActivityNotes: "Ran 5k",
		Date:          "2024-03-01",
		UserID:        pair.User.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	entries, err := e.logSvc.List(ctx, pair.User.ID, "Ran 5k")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, models.MoodHappy, entries[0].Mood)
	assert.Equal(t, 7.5, entries[0].SleepDuration)
}
