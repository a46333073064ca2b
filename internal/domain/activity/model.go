package activity

import "time"

// Type classifies an activity log event.
type Type string

const (
	TypeRequestCreated    Type = "request_created"
	TypeRequestUpdated    Type = "request_updated"
	TypeRequestDeleted    Type = "request_deleted"
	TypeRequestAssigned   Type = "request_assigned"
	TypeRequestUnassigned Type = "request_unassigned"
	TypeRequestCompleted  Type = "request_completed"
	TypeShortlistSaved    Type = "shortlist_saved"
	TypeShortlistRemoved  Type = "shortlist_removed"
	TypeProfileCreated    Type = "profile_created"
	TypeProfileSuspended  Type = "profile_suspended"
	TypeCategoryCreated   Type = "category_created"
	TypeCategoryUpdated   Type = "category_updated"
	TypeCategoryDeleted   Type = "category_deleted"
)

// Entry is one event in the activity log.
type Entry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	RequestID *string   `json:"request_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions filters activity listings.
type ListOptions struct {
	Actor     string
	RequestID *string
	Type      *Type
	Limit     int
	Offset    int
}
