package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/domain/user"
)

// ErrInvalidPeriod indicates an unsupported reporting period.
var ErrInvalidPeriod = errors.New("invalid report period")

// Period selects the reporting window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Report summarizes request volume over a window, bucketed by workflow
// stage, alongside current platform totals. Assigned counts the requests
// currently In Progress.
type Report struct {
	Period     Period `json:"period"`
	From       string `json:"from"`
	To         string `json:"to"`
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	Assigned   int    `json:"assigned"`
	Completed  int    `json:"completed"`
	Categories int    `json:"categories"`
	Users      int    `json:"users"`
}

// RequestLister exposes the request collection for reporting.
type RequestLister interface {
	List(ctx context.Context) ([]request.Request, error)
}

// CategoryLister exposes the category collection for reporting.
type CategoryLister interface {
	List(ctx context.Context) ([]category.Category, error)
}

// UserLister exposes the account collection for reporting.
type UserLister interface {
	List(ctx context.Context) ([]user.Account, error)
}

// Service builds platform management reports.
type Service struct {
	requests   RequestLister
	categories CategoryLister
	users      UserLister
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new report service.
func NewService(requests RequestLister, categories CategoryLister, users UserLister, logger *slog.Logger) *Service {
	return &Service{
		requests:   requests,
		categories: categories,
		users:      users,
		logger:     logger,
		now:        time.Now,
	}
}

// ParsePeriod normalizes a period string.
func ParsePeriod(period string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "daily":
		return PeriodDaily, nil
	case "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Generate counts the requests created inside the period window ending now.
// Records whose creation timestamp cannot be parsed are counted into the
// window rather than silently dropped.
func (s *Service) Generate(ctx context.Context, period Period) (*Report, error) {
	to := s.now().UTC()
	var from time.Time
	switch period {
	case PeriodDaily:
		from = to.AddDate(0, 0, -1)
	case PeriodWeekly:
		from = to.AddDate(0, 0, -7)
	case PeriodMonthly:
		from = to.AddDate(0, -1, 0)
	default:
		return nil, ErrInvalidPeriod
	}

	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	accts, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	rep := &Report{
		Period:     period,
		From:       from.Format(time.RFC3339),
		To:         to.Format(time.RFC3339),
		Categories: len(cats),
		Users:      len(accts),
	}
	for _, rec := range all {
		if created, ok := parseCreated(rec.Created); ok && created.Before(from) {
			continue
		}
		rep.Total++
		switch {
		case request.StatusIs(rec.Status, request.StatusCompleted):
			rep.Completed++
		case request.StatusIs(rec.Status, request.StatusInProgress):
			rep.Assigned++
		default:
			rep.Pending++
		}
	}
	return rep, nil
}

func parseCreated(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
