package request

import "strings"

// Request ids appear in two historical forms: a bare integer-like string
// ("123") and a prefixed string ("REQ-123"). The two must compare equal, so
// every comparison goes through CanonicalID.

// CanonicalID strips a case-insensitive "REQ-" prefix and surrounding
// whitespace, leaving the bare id.
func CanonicalID(id string) string {
	s := strings.TrimSpace(id)
	if len(s) >= 4 && strings.EqualFold(s[:4], "REQ-") {
		s = s[4:]
	}
	return s
}

// SameID reports whether two ids refer to the same request, regardless of
// prefix form.
func SameID(a, b string) bool {
	return CanonicalID(a) == CanonicalID(b)
}

// DisplayID returns the prefixed form used in persisted ledgers and API
// responses.
func DisplayID(id string) string {
	return "REQ-" + CanonicalID(id)
}
