package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := auth.NewJWTManager(testSecret, "carehub", time.Hour)

	token, err := mgr.GenerateAccessToken(auth.Identity{
		Username: "casey",
		Role:     "csr",
		FullName: "Casey Roe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := mgr.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "casey", identity.Username)
	require.Equal(t, "csr", identity.Role)
	require.Equal(t, "Casey Roe", identity.FullName)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	mgr := auth.NewJWTManager(testSecret, "carehub", time.Hour)
	other := auth.NewJWTManager("ffffffffffffffffffffffffffffffff", "carehub", time.Hour)

	token, err := mgr.GenerateAccessToken(auth.Identity{Username: "casey", Role: "csr"})
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsWrongIssuer(t *testing.T) {
	mgr := auth.NewJWTManager(testSecret, "carehub", time.Hour)
	other := auth.NewJWTManager(testSecret, "someone-else", time.Hour)

	token, err := other.GenerateAccessToken(auth.Identity{Username: "casey", Role: "csr"})
	require.NoError(t, err)

	_, err = mgr.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	mgr := auth.NewJWTManager(testSecret, "carehub", -time.Minute)

	token, err := mgr.GenerateAccessToken(auth.Identity{Username: "casey", Role: "csr"})
	require.NoError(t, err)

	_, err = mgr.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsEmpty(t *testing.T) {
	mgr := auth.NewJWTManager(testSecret, "carehub", time.Hour)
	_, err := mgr.ValidateAccessToken("")
	require.Error(t, err)
}
