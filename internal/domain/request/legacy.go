package request

import (
	"encoding/json"
	"strings"
)

// Compatibility adapters for request data written by historical code paths.
// The per-actor shortlist ledger is the source of truth; these readers only
// exist so pre-existing records keep displaying correctly.

// IsShortlistedLegacy reports whether any historical signal marks the record
// as shortlisted. Checks run in priority order: boolean flags, a literal
// "shortlisted" status, then non-empty membership lists or strings.
func IsShortlistedLegacy(rec Request) bool {
	for _, flag := range []*bool{boolPtr(rec.Shortlisted), rec.IsShortlisted, rec.Favorite, rec.IsFavorite} {
		if flag != nil && *flag {
			return true
		}
	}
	if strings.EqualFold(strings.TrimSpace(string(rec.Status)), "shortlisted") {
		return true
	}
	if len(rec.ShortlistedBy) > 0 {
		return true
	}
	for _, raw := range []json.RawMessage{rec.Favorites, rec.Shortlist} {
		if rawHasMembers(raw) {
			return true
		}
	}
	return false
}

// ShortlistCountOf derives the shortlist count for display. An explicit
// count field wins; otherwise the length of the membership list, or the
// number of comma-separated entries when the list was stored as a string;
// otherwise zero.
func ShortlistCountOf(rec Request) int {
	if rec.ShortlistCount != nil {
		return *rec.ShortlistCount
	}
	if rec.ShortlistSnake != nil {
		return *rec.ShortlistSnake
	}
	if len(rec.ShortlistedBy) > 0 {
		return len(rec.ShortlistedBy)
	}
	for _, raw := range []json.RawMessage{rec.Favorites, rec.Shortlist} {
		if n := rawMemberCount(raw); n > 0 {
			return n
		}
	}
	return 0
}

// ViewCountOf resolves the view counter across the historical key spellings.
func ViewCountOf(rec Request) int {
	if rec.ViewCount != 0 {
		return rec.ViewCount
	}
	if rec.ViewCountSnake != nil {
		return *rec.ViewCountSnake
	}
	if rec.Views != nil {
		return *rec.Views
	}
	return 0
}

func rawHasMembers(raw json.RawMessage) bool {
	return rawMemberCount(raw) > 0
}

func rawMemberCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return len(list)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return 0
		}
		n := 0
		for _, part := range strings.Split(s, ",") {
			if strings.TrimSpace(part) != "" {
				n++
			}
		}
		return n
	}
	return 0
}

func boolPtr(b bool) *bool { return &b }
