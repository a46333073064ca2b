package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/jsonstore"
)

func newShortlistStore(t *testing.T) *jsonstore.ShortlistStore {
	t.Helper()
	return jsonstore.NewShortlistStore(filepath.Join(t.TempDir(), "shortlists.json"))
}

func TestShortlistStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := newShortlistStore(t)

	added, err := store.Add(ctx, "casey", "101")
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Add(ctx, "casey", "REQ-102")
	require.NoError(t, err)
	require.True(t, added)

	ids, err := store.ListIDs(ctx, "casey")
	require.NoError(t, err)
	require.Equal(t, []string{"REQ-101", "REQ-102"}, ids)

	ids, err = store.ListIDs(ctx, "jordan")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestShortlistStore_AddIsIdempotentAcrossIDForms(t *testing.T) {
	ctx := context.Background()
	store := newShortlistStore(t)

	added, err := store.Add(ctx, "casey", "REQ-101")
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Add(ctx, "casey", "101")
	require.NoError(t, err)
	require.False(t, added)

	ids, err := store.ListIDs(ctx, "casey")
	require.NoError(t, err)
	require.Len(t, ids, 1)
}

func TestShortlistStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := newShortlistStore(t)

	_, err := store.Add(ctx, "casey", "REQ-101")
	require.NoError(t, err)

	removed, err := store.Remove(ctx, "casey", "101")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = store.Remove(ctx, "casey", "101")
	require.NoError(t, err)
	require.False(t, removed)

	ids, err := store.ListIDs(ctx, "casey")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestShortlistStore_MigratesFlatArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shortlists.json")
	require.NoError(t, os.WriteFile(path, []byte(`["REQ-100","REQ-102"]`), 0o644))

	store := jsonstore.NewShortlistStore(path)

	ids, err := store.ListIDs(ctx, jsonstore.LegacyShortlistActor)
	require.NoError(t, err)
	require.Equal(t, []string{"REQ-100", "REQ-102"}, ids)

	// Adding for a real actor persists the migrated layout alongside.
	_, err = store.Add(ctx, "casey", "REQ-101")
	require.NoError(t, err)

	ids, err = store.ListIDs(ctx, jsonstore.LegacyShortlistActor)
	require.NoError(t, err)
	require.Equal(t, []string{"REQ-100", "REQ-102"}, ids)

	ids, err = store.ListIDs(ctx, "casey")
	require.NoError(t, err)
	require.Equal(t, []string{"REQ-101"}, ids)
}
