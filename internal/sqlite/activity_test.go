package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())
	return db
}

func TestActivityRepository_LogAndList(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(newTestDB(t))

	rid := "REQ-100"
	entry := &activity.Entry{
		Actor:     "casey",
		RequestID: &rid,
		Type:      activity.TypeRequestAssigned,
		Summary:   "assigned request REQ-100 to casey",
	}
	require.NoError(t, repo.Log(ctx, entry))
	require.NotZero(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())

	require.NoError(t, repo.Log(ctx, &activity.Entry{
		Actor:   "admin",
		Type:    activity.TypeProfileCreated,
		Summary: "created csr account casey",
	}))

	entries, err := repo.List(ctx, activity.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestActivityRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(newTestDB(t))

	rid := "REQ-100"
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		Actor: "casey", RequestID: &rid,
		Type: activity.TypeRequestAssigned, Summary: "assigned",
	}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		Actor: "casey",
		Type:  activity.TypeShortlistSaved, Summary: "shortlisted",
	}))
	require.NoError(t, repo.Log(ctx, &activity.Entry{
		Actor: "admin",
		Type:  activity.TypeProfileSuspended, Summary: "suspended",
	}))

	entries, err := repo.List(ctx, activity.ListOptions{Actor: "casey"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	typ := activity.TypeShortlistSaved
	entries, err = repo.List(ctx, activity.ListOptions{Type: &typ})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "shortlisted", entries[0].Summary)

	entries, err = repo.List(ctx, activity.ListOptions{RequestID: &rid})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, activity.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
