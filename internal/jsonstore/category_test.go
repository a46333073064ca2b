package jsonstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/jsonstore"
	"github.com/neighborly/carehub/internal/repository"
)

func newCategoryStore(t *testing.T) *jsonstore.CategoryStore {
	t.Helper()
	return jsonstore.NewCategoryStore(filepath.Join(t.TempDir(), "categories.json"))
}

func TestCategoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := newCategoryStore(t)

	first := category.Category{Name: "Pet Care", Visibility: category.VisibilityPublic}
	require.NoError(t, store.Create(ctx, &first))
	require.Equal(t, "CAT-001", first.ID)

	second := category.Category{Name: "Transportation", Visibility: category.VisibilityPublic}
	require.NoError(t, store.Create(ctx, &second))
	require.Equal(t, "CAT-002", second.ID)
}

func TestCategoryStore_IDNumberingSurvivesDeletes(t *testing.T) {
	ctx := context.Background()
	store := newCategoryStore(t)

	first := category.Category{Name: "Pet Care"}
	require.NoError(t, store.Create(ctx, &first))
	second := category.Category{Name: "Transportation"}
	require.NoError(t, store.Create(ctx, &second))

	require.NoError(t, store.Delete(ctx, "CAT-001"))

	third := category.Category{Name: "Home Maintenance"}
	require.NoError(t, store.Create(ctx, &third))
	require.Equal(t, "CAT-003", third.ID)
}

func TestCategoryStore_UpdateAndFind(t *testing.T) {
	ctx := context.Background()
	store := newCategoryStore(t)

	cat := category.Category{Name: "Pet Care", Visibility: category.VisibilityPublic}
	require.NoError(t, store.Create(ctx, &cat))

	cat.Visibility = category.VisibilityHidden
	require.NoError(t, store.Update(ctx, &cat))

	found, err := store.FindByID(ctx, "cat-001")
	require.NoError(t, err)
	require.Equal(t, category.VisibilityHidden, found.Visibility)

	_, err = store.FindByID(ctx, "CAT-999")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
