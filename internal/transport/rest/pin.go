package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/neighborly/carehub/internal/domain/request"
)

// pinRequestService defines the minimal interface needed by PINHandler.
type pinRequestService interface {
	Create(ctx context.Context, in request.CreateInput) (*request.Request, error)
	Get(ctx context.Context, id string, incrementView bool) (*request.Request, error)
	Update(ctx context.Context, id string, in request.UpdateInput) (*request.Request, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner string) ([]request.Request, error)
	SearchOwned(ctx context.Context, owner string, c request.Criteria) ([]request.Request, error)
}

// PINHandler serves the requester-scoped request endpoints. Every operation
// is restricted to records owned by the caller.
type PINHandler struct {
	svc pinRequestService
	log *slog.Logger
}

// NewPINHandler creates a PINHandler.
func NewPINHandler(svc pinRequestService, logger *slog.Logger) *PINHandler {
	return &PINHandler{svc: svc, log: logger.With("handler", "pin")}
}

// List handles GET /api/pin/requests.
func (h *PINHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.ListByOwner(r.Context(), usernameFromCtx(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Search handles GET /api/pin/requests/search.
func (h *PINHandler) Search(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.SearchOwned(r.Context(), usernameFromCtx(r), criteriaFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Create handles POST /api/pin/requests.
func (h *PINHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// Get handles GET /api/pin/requests/{id}.
func (h *PINHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec := h.ownedRequest(w, r)
	if rec == nil {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Update handles PUT /api/pin/requests/{id}.
func (h *PINHandler) Update(w http.ResponseWriter, r *http.Request) {
	if rec := h.ownedRequest(w, r); rec == nil {
		return
	}

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

// Delete handles DELETE /api/pin/requests/{id}.
func (h *PINHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if rec := h.ownedRequest(w, r); rec == nil {
		return
	}

	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "request deleted"})
}

// ownedRequest loads the addressed request and enforces ownership. A
// request owned by someone else reads as not found rather than forbidden,
// so requesters cannot probe for other people's ids.
func (h *PINHandler) ownedRequest(w http.ResponseWriter, r *http.Request) *request.Request {
	rec, err := h.svc.Get(r.Context(), r.PathValue("id"), false)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil
	}
	if !strings.EqualFold(rec.Owner, usernameFromCtx(r)) {
		writeError(w, http.StatusNotFound, "not found")
		return nil
	}
	return rec
}
