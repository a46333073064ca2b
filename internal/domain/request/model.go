package request

import (
	"encoding/json"
	"time"
)

// Status represents the lifecycle state of a help request.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Request is a help request raised by a PIN user and worked by CSRs.
type Request struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Time        string  `json:"time,omitempty"`
	Status      Status  `json:"status"`
	Owner       string  `json:"owner"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	AssignedAt  *string `json:"assignedAt,omitempty"`

	ViewCount    int    `json:"viewCount,omitempty"`
	LastViewedAt string `json:"lastViewedAt,omitempty"`

	// Shortlisted and ShortlistedBy are a denormalized cache of the
	// per-actor shortlist ledger, kept in lockstep so read paths can show
	// a shortlist count without consulting the ledger.
	Shortlisted   bool     `json:"shortlisted,omitempty"`
	ShortlistedBy []string `json:"shortlisted_by,omitempty"`

	Created     string `json:"created,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`

	LegacyFields
}

// LegacyFields holds request keys written by historical code paths.
// They are recognized on read for compatibility and never written back
// with meaningful values by this service.
type LegacyFields struct {
	IsShortlisted  *bool           `json:"is_shortlisted,omitempty"`
	Favorite       *bool           `json:"favorite,omitempty"`
	IsFavorite     *bool           `json:"is_favorite,omitempty"`
	Favorites      json.RawMessage `json:"favorites,omitempty"`
	Shortlist      json.RawMessage `json:"shortlist,omitempty"`
	ShortlistCount *int            `json:"shortlistCount,omitempty"`
	ShortlistSnake *int            `json:"shortlist_count,omitempty"`
	ViewCountSnake *int            `json:"view_count,omitempty"`
	Views          *int            `json:"views,omitempty"`
}

// nowISO formats a timestamp the way the persisted files expect.
func nowISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
