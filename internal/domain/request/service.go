package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/repository"
)

// Service handles request business logic.
type Service struct {
	requests   Repository
	activities ActivityLogger
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new request service. The activity logger may be nil.
func NewService(requests Repository, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		requests:   requests,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateInput describes a request creation.
type CreateInput struct {
	ID          string
	Title       string
	Description string
	Category    string
	Date        string
	Location    string
	Time        string
	Owner       string
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Category    *string
	Description *string
	Date        *string
	Location    *string
	Time        *string
	Status      *string
}

// Create validates input and persists a new request. The owner is stamped at
// creation; the repository assigns an id when the caller supplied none.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Request, error) {
	if err := ValidateCreateInput(in); err != nil {
		return nil, err
	}

	rec := &Request{
		ID:          in.ID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Status:      StatusPending,
		Owner:       in.Owner,
		Created:     nowISO(s.now()),
	}

	if err := s.requests.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	s.logActivity(ctx, in.Owner, rec.ID, activity.TypeRequestCreated,
		fmt.Sprintf("created request %s", rec.ID))
	return rec, nil
}

// Get returns a request by id, optionally incrementing its view counter
// first so the returned record reflects the new count.
func (s *Service) Get(ctx context.Context, id string, incrementView bool) (*Request, error) {
	if incrementView {
		if _, err := s.IncrementViewCount(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return s.find(ctx, id)
}

// GetPrevious returns a request only when its status equals the target
// status (default Completed), case-insensitively.
func (s *Service) GetPrevious(ctx context.Context, id, status string) (*Request, error) {
	if status == "" {
		status = string(StatusCompleted)
	}
	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(string(rec.Status)), strings.TrimSpace(status)) {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Update applies the supplied fields to an existing request. Date, time and
// status values are validated before anything is applied, so a malformed
// value leaves the record fully unchanged.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Request, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Message: "request id is required"}
	}

	if in.Date != nil {
		if err := ValidateDate(*in.Date); err != nil {
			return nil, err
		}
	}
	if in.Time != nil {
		if err := ValidateTime(*in.Time); err != nil {
			return nil, err
		}
	}
	var newStatus Status
	if in.Status != nil {
		parsed, err := ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		newStatus = parsed
	}

	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		rec.Title = *in.Title
	}
	if in.Category != nil {
		rec.Category = *in.Category
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.Location != nil {
		rec.Location = *in.Location
	}
	if in.Time != nil {
		rec.Time = *in.Time
	}
	if in.Status != nil {
		rec.Status = newStatus
	}
	rec.LastUpdated = nowISO(s.now())

	if err := s.requests.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("updating request: %w", err)
	}

	s.logActivity(ctx, rec.Owner, rec.ID, activity.TypeRequestUpdated,
		fmt.Sprintf("updated request %s", rec.ID))
	return rec, nil
}

// Delete removes a request by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting request: %w", err)
	}
	s.logActivity(ctx, "", id, activity.TypeRequestDeleted,
		fmt.Sprintf("deleted request %s", DisplayID(id)))
	return nil
}

// Assign sets the assignee and moves the request to In Progress unless it is
// already Completed; a completed record's status is never downgraded.
func (s *Service) Assign(ctx context.Context, id, assignee string) (*Request, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	at := nowISO(s.now())
	rec.AssignedTo = &assignee
	rec.AssignedAt = &at
	if !StatusIs(rec.Status, StatusCompleted) {
		rec.Status = StatusInProgress
	}

	if err := s.requests.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("assigning request: %w", err)
	}

	s.logActivity(ctx, assignee, rec.ID, activity.TypeRequestAssigned,
		fmt.Sprintf("assigned request %s to %s", rec.ID, assignee))
	return rec, nil
}

// Unassign clears the assignee pair and moves the request back to Pending
// unless it is Completed.
func (s *Service) Unassign(ctx context.Context, id, actor string) (*Request, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.AssignedTo = nil
	rec.AssignedAt = nil
	if !StatusIs(rec.Status, StatusCompleted) {
		rec.Status = StatusPending
	}

	if err := s.requests.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("unassigning request: %w", err)
	}

	s.logActivity(ctx, actor, rec.ID, activity.TypeRequestUnassigned,
		fmt.Sprintf("unassigned request %s", rec.ID))
	return rec, nil
}

// Complete marks a request Completed. A request completed without a prior
// assignment gets the completing actor backfilled as assignee.
func (s *Service) Complete(ctx context.Context, id, actor string) (*Request, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := nowISO(s.now())
	rec.Status = StatusCompleted
	rec.CompletedAt = now
	if rec.AssignedTo == nil || *rec.AssignedTo == "" {
		rec.AssignedTo = &actor
		rec.AssignedAt = &now
	}

	if err := s.requests.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("completing request: %w", err)
	}

	s.logActivity(ctx, actor, rec.ID, activity.TypeRequestCompleted,
		fmt.Sprintf("completed request %s", rec.ID))
	return rec, nil
}

// IncrementViewCount bumps the view counter and returns the new value.
// A missing request is reported as ErrNotFound rather than folded into a
// zero count; boundaries that need the historical zero-on-missing payload
// translate it themselves.
func (s *Service) IncrementViewCount(ctx context.Context, id string) (int, error) {
	count, err := s.requests.IncrementViewCount(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("incrementing view count: %w", err)
	}
	return count, nil
}

// ViewCount reads the persisted view counter, honoring legacy key spellings.
func (s *Service) ViewCount(ctx context.Context, id string) (int, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return 0, err
	}
	return ViewCountOf(*rec), nil
}

// ShortlistCount derives the shortlist counter for a request from the
// denormalized cache and legacy fields.
func (s *Service) ShortlistCount(ctx context.Context, id string) (int, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return 0, err
	}
	return ShortlistCountOf(*rec), nil
}

// List returns all requests in stored order.
func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.requests.List(ctx)
}

// ListByOwner returns the requests stamped with the given owner.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]Request, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	var owned []Request
	for _, rec := range all {
		if ownedBy(rec, owner) {
			owned = append(owned, rec)
		}
	}
	return owned, nil
}

// Search filters the full collection by the supplied criteria.
func (s *Service) Search(ctx context.Context, c Criteria) ([]Request, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, c), nil
}

// SearchOwned runs Search and keeps only records owned by the given actor.
func (s *Service) SearchOwned(ctx context.Context, owner string, c Criteria) ([]Request, error) {
	found, err := s.Search(ctx, c)
	if err != nil {
		return nil, err
	}
	var owned []Request
	for _, rec := range found {
		if ownedBy(rec, owner) {
			owned = append(owned, rec)
		}
	}
	return owned, nil
}

// SearchPrevious filters terminal requests with the exact-status variant.
func (s *Service) SearchPrevious(ctx context.Context, pc PreviousCriteria) ([]Request, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPrevious(all, pc), nil
}

func (s *Service) find(ctx context.Context, id string) (*Request, error) {
	rec, err := s.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading request: %w", err)
	}
	return rec, nil
}

func (s *Service) logActivity(ctx context.Context, actor, requestID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	rid := DisplayID(requestID)
	err := s.activities.Log(ctx, &activity.Entry{
		Actor:     actor,
		RequestID: &rid,
		Type:      typ,
		Summary:   summary,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "type", typ, "error", err)
	}
}

func ownedBy(rec Request, owner string) bool {
	if owner == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(rec.Owner), strings.TrimSpace(owner))
}
