package shortlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/repository"
)

// Repository persists the per-actor shortlist ledger. Ids are stored in
// canonical display form ("REQ-<n>").
type Repository interface {
	ListIDs(ctx context.Context, actor string) ([]string, error)
	Add(ctx context.Context, actor, id string) (added bool, err error)
	Remove(ctx context.Context, actor, id string) (removed bool, err error)
}

// RequestStore is the slice of request persistence the shortlist service
// needs to keep the denormalized record fields in step with the ledger.
type RequestStore interface {
	List(ctx context.Context) ([]request.Request, error)
	FindByID(ctx context.Context, id string) (*request.Request, error)
	Update(ctx context.Context, rec *request.Request) error
}

// ActivityLogger records shortlist events.
type ActivityLogger interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Service handles shortlist business logic.
type Service struct {
	ledger     Repository
	requests   RequestStore
	activities ActivityLogger
	logger     *slog.Logger
}

// NewService creates a new shortlist service. The activity logger may be nil.
func NewService(ledger Repository, requests RequestStore, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		ledger:     ledger,
		requests:   requests,
		activities: activities,
		logger:     logger,
	}
}

// Save adds a request to an actor's shortlist. Saving an already shortlisted
// request is a no-op reported through the returned flag. The denormalized
// fields on the request record are updated in the same call.
func (s *Service) Save(ctx context.Context, actor, id string) (already bool, err error) {
	if strings.TrimSpace(actor) == "" || strings.TrimSpace(id) == "" {
		return false, ErrInvalidInput
	}

	rec, err := s.findRequest(ctx, id)
	if err != nil {
		return false, err
	}

	added, err := s.ledger.Add(ctx, actor, request.DisplayID(id))
	if err != nil {
		return false, fmt.Errorf("saving shortlist entry: %w", err)
	}
	if !added {
		return true, nil
	}

	rec.Shortlisted = true
	if !containsActor(rec.ShortlistedBy, actor) {
		rec.ShortlistedBy = append(rec.ShortlistedBy, actor)
	}
	if err := s.requests.Update(ctx, rec); err != nil {
		return false, fmt.Errorf("updating shortlisted request: %w", err)
	}

	s.logActivity(ctx, actor, rec.ID, activity.TypeShortlistSaved,
		fmt.Sprintf("%s shortlisted request %s", actor, rec.ID))
	return false, nil
}

// Remove drops a request from an actor's shortlist. Removing an entry that
// is not present is not an error.
func (s *Service) Remove(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(actor) == "" || strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}

	removed, err := s.ledger.Remove(ctx, actor, request.DisplayID(id))
	if err != nil {
		return fmt.Errorf("removing shortlist entry: %w", err)
	}
	if !removed {
		return nil
	}

	rec, err := s.findRequest(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	rec.ShortlistedBy = removeActor(rec.ShortlistedBy, actor)
	rec.Shortlisted = len(rec.ShortlistedBy) > 0
	if err := s.requests.Update(ctx, rec); err != nil {
		return fmt.Errorf("updating unshortlisted request: %w", err)
	}

	s.logActivity(ctx, actor, rec.ID, activity.TypeShortlistRemoved,
		fmt.Sprintf("%s removed request %s from shortlist", actor, rec.ID))
	return nil
}

// ListFor returns the full records on an actor's shortlist, in ledger order.
// Ledger entries whose request has since been deleted are skipped.
func (s *Service) ListFor(ctx context.Context, actor string) ([]request.Request, error) {
	ids, err := s.ledger.ListIDs(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("listing shortlist: %w", err)
	}

	var records []request.Request
	for _, id := range ids {
		rec, err := s.requests.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading shortlisted request: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// SearchFor filters the shortlisted subset of all requests by the given
// criteria. A record counts as shortlisted when the actor's ledger names it
// or when a historical record-level signal marks it.
func (s *Service) SearchFor(ctx context.Context, actor string, c request.Criteria) ([]request.Request, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	ids, err := s.ledger.ListIDs(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("listing shortlist: %w", err)
	}

	ledgered := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		ledgered[request.CanonicalID(id)] = struct{}{}
	}

	return request.FilterShortlisted(all, c, func(rec request.Request) bool {
		if _, ok := ledgered[request.CanonicalID(rec.ID)]; ok {
			return true
		}
		return request.IsShortlistedLegacy(rec)
	}), nil
}

func (s *Service) findRequest(ctx context.Context, id string) (*request.Request, error) {
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
	rid := request.DisplayID(requestID)
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

func containsActor(actors []string, actor string) bool {
	for _, a := range actors {
		if strings.EqualFold(a, actor) {
			return true
		}
	}
	return false
}

func removeActor(actors []string, actor string) []string {
	var kept []string
	for _, a := range actors {
		if !strings.EqualFold(a, actor) {
			kept = append(kept, a)
		}
	}
	return kept
}
