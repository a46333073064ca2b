package request

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidateCreateInput checks the fields required to create a request,
// naming the first missing field.
func ValidateCreateInput(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "request title is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Field: "description", Message: "request description is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return &ValidationError{Field: "category", Message: "request category is required"}
	}
	if strings.TrimSpace(in.Date) == "" {
		return &ValidationError{Field: "date", Message: "request date is required"}
	}
	if strings.TrimSpace(in.Location) == "" {
		return &ValidationError{Field: "location", Message: "request location is required"}
	}
	if err := ValidateDate(in.Date); err != nil {
		return err
	}
	if in.Time != "" {
		if err := ValidateTime(in.Time); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD date format.
func ValidateDate(v string) error {
	if _, err := time.Parse(dateLayout, v); err != nil {
		return &ValidationError{Field: "date", Message: "invalid date format, use YYYY-MM-DD"}
	}
	return nil
}

// ValidateTime checks the HH:MM time-of-day format.
func ValidateTime(v string) error {
	if _, err := time.Parse(timeLayout, v); err != nil {
		return &ValidationError{Field: "time", Message: "invalid time format, use HH:MM"}
	}
	return nil
}

// ParseStatus resolves a free-text status to the canonical enum value.
// Matching is case-insensitive; unknown values are rejected rather than
// stored verbatim.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending":
		return StatusPending, nil
	case "in progress", "assigned":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	default:
		return "", &ValidationError{Field: "status", Message: "status must be Pending, In Progress or Completed"}
	}
}

// StatusIs compares a stored status to a target case-insensitively.
func StatusIs(s Status, target Status) bool {
	return strings.EqualFold(string(s), string(target))
}
