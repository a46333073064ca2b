package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/neighborly/carehub/internal/domain/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// ActivityHandler serves the admin activity-log endpoint.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /api/admin/activity.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := activity.ListOptions{
		Actor: q.Get("actor"),
		Limit: 50,
	}
	if raw := q.Get("request_id"); raw != "" {
		opts.RequestID = &raw
	}
	if raw := q.Get("type"); raw != "" {
		typ := activity.Type(raw)
		opts.Type = &typ
	}
	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			opts.Limit = limit
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			opts.Offset = offset
		}
	}

	entries, err := h.svc.Recent(r.Context(), opts)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
