package request_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neighborly/carehub/internal/domain/request"
)

func TestCanonicalID(t *testing.T) {
	require.Equal(t, "123", request.CanonicalID("REQ-123"))
	require.Equal(t, "123", request.CanonicalID("req-123"))
	require.Equal(t, "123", request.CanonicalID(" 123 "))
	require.Equal(t, "REQ-123", request.DisplayID("123"))
	require.Equal(t, "REQ-123", request.DisplayID("REQ-123"))
	require.True(t, request.SameID("REQ-7", "7"))
	require.False(t, request.SameID("REQ-7", "8"))
}

func TestIsShortlistedLegacy_Flags(t *testing.T) {
	yes := true

	require.True(t, request.IsShortlistedLegacy(request.Request{Shortlisted: true}))
	require.True(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{IsShortlisted: &yes},
	}))
	require.True(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{Favorite: &yes},
	}))
	require.True(t, request.IsShortlistedLegacy(request.Request{Status: "shortlisted"}))
	require.True(t, request.IsShortlistedLegacy(request.Request{ShortlistedBy: []string{"casey"}}))
	require.False(t, request.IsShortlistedLegacy(request.Request{Status: request.StatusPending}))
}

func TestIsShortlistedLegacy_RawLists(t *testing.T) {
	require.True(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{Favorites: json.RawMessage(`["a","b"]`)},
	}))
	require.True(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{Shortlist: json.RawMessage(`"casey,jordan"`)},
	}))
	require.False(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{Shortlist: json.RawMessage(`""`)},
	}))
	require.False(t, request.IsShortlistedLegacy(request.Request{
		LegacyFields: request.LegacyFields{Favorites: json.RawMessage(`[]`)},
	}))
}

func TestShortlistCountOf(t *testing.T) {
	five := 5
	three := 3

	// Explicit count fields win.
	require.Equal(t, 5, request.ShortlistCountOf(request.Request{
		ShortlistedBy: []string{"a"},
		LegacyFields:  request.LegacyFields{ShortlistCount: &five},
	}))
	require.Equal(t, 3, request.ShortlistCountOf(request.Request{
		LegacyFields: request.LegacyFields{ShortlistSnake: &three},
	}))

	// Then the membership list.
	require.Equal(t, 2, request.ShortlistCountOf(request.Request{
		ShortlistedBy: []string{"a", "b"},
	}))

	// Then comma-separated strings, blanks skipped.
	require.Equal(t, 2, request.ShortlistCountOf(request.Request{
		LegacyFields: request.LegacyFields{Favorites: json.RawMessage(`"a, ,b"`)},
	}))

	require.Equal(t, 0, request.ShortlistCountOf(request.Request{}))
}

func TestViewCountOf(t *testing.T) {
	seven := 7
	nine := 9

	require.Equal(t, 4, request.ViewCountOf(request.Request{ViewCount: 4}))
	require.Equal(t, 7, request.ViewCountOf(request.Request{
		LegacyFields: request.LegacyFields{ViewCountSnake: &seven},
	}))
	require.Equal(t, 9, request.ViewCountOf(request.Request{
		LegacyFields: request.LegacyFields{Views: &nine},
	}))
	require.Equal(t, 0, request.ViewCountOf(request.Request{}))
}
