package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/domain/request"
)

// requestService defines the minimal interface needed by RequestHandler.
type requestService interface {
	Create(ctx context.Context, in request.CreateInput) (*request.Request, error)
	Get(ctx context.Context, id string, incrementView bool) (*request.Request, error)
	GetPrevious(ctx context.Context, id, status string) (*request.Request, error)
	Update(ctx context.Context, id string, in request.UpdateInput) (*request.Request, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]request.Request, error)
	Search(ctx context.Context, c request.Criteria) ([]request.Request, error)
	SearchPrevious(ctx context.Context, pc request.PreviousCriteria) ([]request.Request, error)
	IncrementViewCount(ctx context.Context, id string) (int, error)
	ViewCount(ctx context.Context, id string) (int, error)
	ShortlistCount(ctx context.Context, id string) (int, error)
}

// RequestHandler serves the shared request endpoints.
type RequestHandler struct {
	svc requestService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc requestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "requests")}
}

// requestPayload is the shared create/update body. All fields are optional
// at the decoding layer; the services enforce what each operation requires.
type requestPayload struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Time        *string `json:"time"`
	Status      *string `json:"status"`
}

func (p requestPayload) createInput(owner string) request.CreateInput {
	in := request.CreateInput{Owner: owner}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Category != nil {
		in.Category = *p.Category
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	if p.Location != nil {
		in.Location = *p.Location
	}
	if p.Time != nil {
		in.Time = *p.Time
	}
	return in
}

func (p requestPayload) updateInput() request.UpdateInput {
	return request.UpdateInput{
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
		Location:    p.Location,
		Time:        p.Time,
		Status:      p.Status,
	}
}

func criteriaFromQuery(r *http.Request) request.Criteria {
	q := r.URL.Query()
	keyword := q.Get("keyword")
	if keyword == "" {
		keyword = q.Get("q")
	}
	return request.Criteria{
		ID:       q.Get("id"),
		Title:    q.Get("title"),
		Category: q.Get("category"),
		Date:     q.Get("date"),
		Status:   q.Get("status"),
		Keyword:  keyword,
	}
}

// List handles GET /api/requests. Query parameters act as search filters;
// none means the full collection.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Search(r.Context(), criteriaFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Search handles GET /api/requests/search.
func (h *RequestHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.List(w, r)
}

// Create handles POST /api/requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Create(r.Context(), payload.createInput(usernameFromCtx(r)))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Get handles GET /api/requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), r.PathValue("id"), false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// GetCompleted handles GET /api/requests/{id}/completed. An optional status
// query overrides the Completed default.
func (h *RequestHandler) GetCompleted(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetPrevious(r.Context(), r.PathValue("id"), r.URL.Query().Get("status"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Update handles PUT /api/requests/{id}.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Update(r.Context(), r.PathValue("id"), payload.updateInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/requests/{id}.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "request deleted"})
}

// UpdateStatus handles PUT /api/requests/{id}/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Update(r.Context(), r.PathValue("id"), request.UpdateInput{Status: &payload.Status})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// GetViews handles GET /api/requests/{id}/views.
func (h *RequestHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.ViewCount(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"viewCount": count})
}

// IncrementViews handles POST /api/requests/{id}/views. An unknown id
// answers a zero count instead of 404; historical clients fire this call
// blindly and treat any non-200 as fatal.
func (h *RequestHandler) IncrementViews(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.IncrementViewCount(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]int{"viewCount": 0})
			return
		}
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"viewCount": count})
}

// GetShortlistCount handles GET /api/requests/{id}/shortlist-count.
func (h *RequestHandler) GetShortlistCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.ShortlistCount(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"shortlistCount": count})
}

func recordsOrEmpty(recs []request.Request) []request.Request {
	if recs == nil {
		return []request.Request{}
	}
	return recs
}
