package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/domain/request"
)

// csrRequestService defines the request operations CSRHandler needs.
type csrRequestService interface {
	Get(ctx context.Context, id string, incrementView bool) (*request.Request, error)
	List(ctx context.Context) ([]request.Request, error)
	Search(ctx context.Context, c request.Criteria) ([]request.Request, error)
	SearchPrevious(ctx context.Context, pc request.PreviousCriteria) ([]request.Request, error)
	Assign(ctx context.Context, id, assignee string) (*request.Request, error)
	Unassign(ctx context.Context, id, actor string) (*request.Request, error)
	Complete(ctx context.Context, id, actor string) (*request.Request, error)
}

// shortlistService defines the shortlist operations CSRHandler needs.
type shortlistService interface {
	Save(ctx context.Context, actor, id string) (already bool, err error)
	Remove(ctx context.Context, actor, id string) error
	ListFor(ctx context.Context, actor string) ([]request.Request, error)
	SearchFor(ctx context.Context, actor string, c request.Criteria) ([]request.Request, error)
}

// CSRHandler serves the case-worker endpoints: the full request pool,
// assignment workflow and the personal shortlist.
type CSRHandler struct {
	requests   csrRequestService
	shortlists shortlistService
	log        *slog.Logger
}

// NewCSRHandler creates a CSRHandler.
func NewCSRHandler(requests csrRequestService, shortlists shortlistService, logger *slog.Logger) *CSRHandler {
	return &CSRHandler{
		requests:   requests,
		shortlists: shortlists,
		log:        logger.With("handler", "csr"),
	}
}

// List handles GET /api/csr/requests.
func (h *CSRHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.requests.Search(r.Context(), criteriaFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Search handles GET /api/csr/requests/search.
func (h *CSRHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.List(w, r)
}

// SearchPrevious handles GET /api/csr/requests/previous. Filters run over
// the completed pool only; an optional status query targets another
// terminal status.
func (h *CSRHandler) SearchPrevious(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pc := request.PreviousCriteria{
		Status:   q.Get("status"),
		Keyword:  q.Get("keyword"),
		Category: q.Get("category"),
		Date:     q.Get("date"),
	}
	recs, err := h.requests.SearchPrevious(r.Context(), pc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Get handles GET /api/csr/requests/{id}. Opening a request from the pool
// counts as a view.
func (h *CSRHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.requests.Get(r.Context(), r.PathValue("id"), true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Assign handles POST /api/csr/requests/{id}/assign. The caller assigns
// the request to themselves.
func (h *CSRHandler) Assign(w http.ResponseWriter, r *http.Request) {
	rec, err := h.requests.Assign(r.Context(), r.PathValue("id"), usernameFromCtx(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Unassign handles DELETE /api/csr/requests/{id}/assign.
func (h *CSRHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	rec, err := h.requests.Unassign(r.Context(), r.PathValue("id"), usernameFromCtx(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Complete handles POST /api/csr/requests/{id}/complete.
func (h *CSRHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rec, err := h.requests.Complete(r.Context(), r.PathValue("id"), usernameFromCtx(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Shortlist handles GET /api/csr/shortlist.
func (h *CSRHandler) Shortlist(w http.ResponseWriter, r *http.Request) {
	recs, err := h.shortlists.ListFor(r.Context(), usernameFromCtx(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// SaveShortlist handles POST /api/csr/shortlist/save/{id}.
func (h *CSRHandler) SaveShortlist(w http.ResponseWriter, r *http.Request) {
	already, err := h.shortlists.Save(r.Context(), usernameFromCtx(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if already {
		writeJSON(w, http.StatusOK, map[string]string{"message": "already shortlisted"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "shortlisted"})
}

// RemoveShortlist handles DELETE /api/csr/shortlist/{id}.
func (h *CSRHandler) RemoveShortlist(w http.ResponseWriter, r *http.Request) {
	if err := h.shortlists.Remove(r.Context(), usernameFromCtx(r), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "removed from shortlist"})
}

// SearchShortlist handles GET /api/csr/shortlist/search.
func (h *CSRHandler) SearchShortlist(w http.ResponseWriter, r *http.Request) {
	recs, err := h.shortlists.SearchFor(r.Context(), usernameFromCtx(r), criteriaFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}
