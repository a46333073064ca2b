package jsonstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/user"
	"github.com/neighborly/carehub/internal/jsonstore"
	"github.com/neighborly/carehub/internal/repository"
)

func newUserStore(t *testing.T) *jsonstore.UserStore {
	t.Helper()
	return jsonstore.NewUserStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestUserStore_CreateAssignsIDAndUID(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	first := user.Account{Username: "pat", FullName: "Pat Doe", Role: user.RolePIN, Status: user.StatusActive}
	require.NoError(t, store.Create(ctx, &first))
	require.Equal(t, 1, first.ID)
	require.Equal(t, "U-001", first.UID)

	second := user.Account{Username: "casey", FullName: "Casey Roe", Role: user.RoleCSR, Status: user.StatusActive}
	require.NoError(t, store.Create(ctx, &second))
	require.Equal(t, 2, second.ID)
	require.Equal(t, "U-002", second.UID)
}

func TestUserStore_CreateRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	require.NoError(t, store.Create(ctx, &user.Account{Username: "pat", Role: user.RolePIN}))

	// Same username in another role bucket is still a conflict.
	err := store.Create(ctx, &user.Account{Username: "Pat", Role: user.RoleCSR})
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserStore_FindByUsernameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	require.NoError(t, store.Create(ctx, &user.Account{Username: "pat", Role: user.RolePIN}))

	acct, err := store.FindByUsername(ctx, "PAT")
	require.NoError(t, err)
	require.Equal(t, "pat", acct.Username)

	_, err = store.FindByUsername(ctx, "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStore_UpdateMovesBetweenBuckets(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	acct := user.Account{Username: "pat", FullName: "Pat Doe", Role: user.RolePIN, Status: user.StatusActive}
	require.NoError(t, store.Create(ctx, &acct))

	acct.Role = user.RoleCSR
	acct.Username = "pat.doe"
	require.NoError(t, store.Update(ctx, "pat", &acct))

	_, err := store.FindByUsername(ctx, "pat")
	require.ErrorIs(t, err, repository.ErrNotFound)

	moved, err := store.FindByUsername(ctx, "pat.doe")
	require.NoError(t, err)
	require.Equal(t, user.RoleCSR, moved.Role)
	require.Equal(t, acct.ID, moved.ID)
}

func TestUserStore_UpdateRenameCollision(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	require.NoError(t, store.Create(ctx, &user.Account{Username: "pat", Role: user.RolePIN}))
	sam := user.Account{Username: "sam", Role: user.RolePIN}
	require.NoError(t, store.Create(ctx, &sam))

	sam.Username = "pat"
	require.ErrorIs(t, store.Update(ctx, "sam", &sam), repository.ErrConflict)
}

func TestUserStore_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	require.NoError(t, store.Create(ctx, &user.Account{Username: "pat", Role: user.RolePIN}))
	require.NoError(t, store.Create(ctx, &user.Account{Username: "casey", Role: user.RoleCSR}))
	require.NoError(t, store.Create(ctx, &user.Account{Username: "admin", Role: user.RoleAdmin}))

	accts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, accts, 3)
	require.Equal(t, []int{1, 2, 3}, []int{accts[0].ID, accts[1].ID, accts[2].ID})
}

func TestUserStore_FindByID(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)

	acct := user.Account{Username: "pat", Role: user.RolePIN}
	require.NoError(t, store.Create(ctx, &acct))

	found, err := store.FindByID(ctx, acct.ID)
	require.NoError(t, err)
	require.Equal(t, "pat", found.Username)

	_, err = store.FindByID(ctx, 99)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
