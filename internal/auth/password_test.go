package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/auth"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, auth.VerifyPassword(hash, "hunter2hunter2"))
	require.False(t, auth.VerifyPassword(hash, "wrong"))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	require.True(t, auth.VerifyPassword("plaintext-secret", "plaintext-secret"))
	require.False(t, auth.VerifyPassword("plaintext-secret", "other"))
	require.False(t, auth.VerifyPassword("", ""))
}
