package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/repository"
)

// Repository persists categories. Create assigns the id when the record
// carries none.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, cat *Category) error
	Update(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id string) error
}

// RequestLister exposes the request collection for usage checks.
type RequestLister interface {
	List(ctx context.Context) ([]request.Request, error)
}

// ActivityLogger records category events.
type ActivityLogger interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// InUseError is returned when a delete is blocked by requests still
// referencing the category.
type InUseError struct {
	UsageCount int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("category is referenced by %d request(s)", e.UsageCount)
}

func (e *InUseError) Unwrap() error { return ErrInUse }

// CreateInput describes a category creation.
type CreateInput struct {
	Name        string
	Description string
	Visibility  string
}

// UpdateInput carries a partial category update.
type UpdateInput struct {
	Name        *string
	Description *string
	Visibility  *string
}

// Service handles category business logic.
type Service struct {
	categories Repository
	requests   RequestLister
	activities ActivityLogger
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new category service. The activity logger may be nil.
func NewService(categories Repository, requests RequestLister, activities ActivityLogger, logger *slog.Logger) *Service {
	return &Service{
		categories: categories,
		requests:   requests,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns categories, optionally filtered by a case-insensitive name
// substring and an exact visibility.
func (s *Service) List(ctx context.Context, query, visibility string) ([]Category, error) {
	all, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	if query == "" && visibility == "" {
		return all, nil
	}
	var matched []Category
	for _, cat := range all {
		if query != "" && !strings.Contains(strings.ToLower(cat.Name), strings.ToLower(query)) {
			continue
		}
		if visibility != "" && !strings.EqualFold(string(cat.Visibility), visibility) {
			continue
		}
		matched = append(matched, cat)
	}
	return matched, nil
}

// ListPublic returns only the categories offered to request creators.
func (s *Service) ListPublic(ctx context.Context) ([]Category, error) {
	return s.List(ctx, "", string(VisibilityPublic))
}

// Get returns a category by id.
func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading category: %w", err)
	}
	return cat, nil
}

// Create adds a category. Names are unique case-insensitively.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	visibility, err := parseVisibility(in.Visibility)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	now := s.now().UTC().Format(time.RFC3339)
	cat := &Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Visibility:  visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	s.logActivity(ctx, activity.TypeCategoryCreated, fmt.Sprintf("created category %q", cat.Name))
	return cat, nil
}

// Update applies the supplied fields to a category. A rename into a name
// held by another category is rejected.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Category, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		taken, err := s.nameTaken(ctx, name, cat.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
		cat.Name = name
	}
	if in.Description != nil {
		cat.Description = strings.TrimSpace(*in.Description)
	}
	if in.Visibility != nil {
		visibility, err := parseVisibility(*in.Visibility)
		if err != nil {
			return nil, err
		}
		cat.Visibility = visibility
	}
	cat.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	s.logActivity(ctx, activity.TypeCategoryUpdated, fmt.Sprintf("updated category %q", cat.Name))
	return cat, nil
}

// Delete removes a category. The delete is blocked with an InUseError when
// any request still references the category by name.
func (s *Service) Delete(ctx context.Context, id string) error {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.usageCount(ctx, cat.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &InUseError{UsageCount: count}
	}

	if err := s.categories.Delete(ctx, cat.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting category: %w", err)
	}

	s.logActivity(ctx, activity.TypeCategoryDeleted, fmt.Sprintf("deleted category %q", cat.Name))
	return nil
}

// EnsureSeed installs the default public categories when none exist yet.
func (s *Service) EnsureSeed(ctx context.Context) error {
	all, err := s.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	if len(all) > 0 {
		return nil
	}

	now := s.now().UTC().Format(time.RFC3339)
	for _, seed := range []Category{
		{Name: "Groceries & Errands", Description: "Shopping runs, pharmacy pickups and everyday errands", Visibility: VisibilityPublic},
		{Name: "Transportation", Description: "Rides to appointments and community events", Visibility: VisibilityPublic},
		{Name: "Home Maintenance", Description: "Small repairs, yard work and seasonal chores", Visibility: VisibilityPublic},
	} {
		seed.CreatedAt = now
		seed.UpdatedAt = now
		cat := seed
		if err := s.categories.Create(ctx, &cat); err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
	}
	if s.logger != nil {
		s.logger.Info("seeded default categories", "count", 3)
	}
	return nil
}

func (s *Service) nameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	all, err := s.categories.List(ctx)
	if err != nil {
		return false, fmt.Errorf("listing categories: %w", err)
	}
	for _, cat := range all {
		if cat.ID != excludeID && strings.EqualFold(strings.TrimSpace(cat.Name), name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) usageCount(ctx context.Context, name string) (int, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing requests: %w", err)
	}
	count := 0
	for _, rec := range all {
		if strings.EqualFold(strings.TrimSpace(rec.Category), strings.TrimSpace(name)) {
			count++
		}
	}
	return count, nil
}

func (s *Service) logActivity(ctx context.Context, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, &activity.Entry{
		Actor:   "admin",
		Type:    typ,
		Summary: summary,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("activity log failed", "type", typ, "error", err)
	}
}

func parseVisibility(v string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "public":
		return VisibilityPublic, nil
	case "hidden":
		return VisibilityHidden, nil
	default:
		return "", ErrInvalidInput
	}
}
