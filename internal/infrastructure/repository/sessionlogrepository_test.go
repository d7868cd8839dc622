package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/domain/audit"
)

func insertTestSession(t *testing.T, repo audit.Repository, accountID uint, username, displayName string, loginAt time.Time) *audit.SessionRecord {
	t.Helper()
	rec, err := audit.NewSessionRecord(accountID, username, displayName, "desktop", loginAt)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), rec))
	return rec
}

func TestSessionLogRepository_InsertAndGet(t *testing.T) {
	repo := NewSessionLogRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	loginAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	rec := insertTestSession(t, repo, 1, "chief01", "Chief", loginAt)
	assert.NotZero(t, rec.ID())

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uint(1), found.AccountID())
	assert.Equal(t, "chief01", found.Username())
	assert.Equal(t, "Chief", found.DisplayName())
	assert.Equal(t, "desktop", found.Origin())
	assert.True(t, found.IsActive())
	assert.True(t, found.LoginAt().Equal(loginAt))

	found, err = repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionLogRepository_Update(t *testing.T) {
	repo := NewSessionLogRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	loginAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	rec := insertTestSession(t, repo, 1, "chief01", "", loginAt)
	require.NoError(t, rec.Close(loginAt.Add(95*time.Minute)))
	require.NoError(t, repo.Update(ctx, rec))

	found, err := repo.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, audit.StatusLoggedOut, found.Status())
	require.NotNil(t, found.LogoutAt())
	require.NotNil(t, found.DurationMinutes())
	assert.Equal(t, 95, *found.DurationMinutes())
	assert.True(t, found.LoginAt().Equal(loginAt), "login fields untouched by close")
}

func TestSessionLogRepository_List(t *testing.T) {
	repo := NewSessionLogRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	base := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	insertTestSession(t, repo, 1, "chief01", "Chief Warden", base)
	insertTestSession(t, repo, 2, "delegate01", "Night Shift", base.Add(time.Hour))
	insertTestSession(t, repo, 1, "chief01", "Chief Warden", base.Add(2*time.Hour))

	t.Run("newest first", func(t *testing.T) {
		records, err := repo.List(ctx, audit.ListFilter{})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.True(t, records[0].LoginAt().After(records[1].LoginAt()))
		assert.True(t, records[1].LoginAt().After(records[2].LoginAt()))
	})

	t.Run("filters by username substring", func(t *testing.T) {
		records, err := repo.List(ctx, audit.ListFilter{Query: "CHIEF"})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filters by display name substring", func(t *testing.T) {
		records, err := repo.List(ctx, audit.ListFilter{Query: "night"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "delegate01", records[0].Username())
	})

	t.Run("no matches", func(t *testing.T) {
		records, err := repo.List(ctx, audit.ListFilter{Query: "ghost"})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("blank query lists everything", func(t *testing.T) {
		records, err := repo.List(ctx, audit.ListFilter{Query: "   "})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}
