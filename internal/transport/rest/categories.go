package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/domain/category"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	List(ctx context.Context, query, visibility string) ([]category.Category, error)
	ListPublic(ctx context.Context) ([]category.Category, error)
	Create(ctx context.Context, in category.CreateInput) (*category.Category, error)
	Update(ctx context.Context, id string, in category.UpdateInput) (*category.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryHandler serves category management and the public category list.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "categories")}
}

type categoryPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cats, err := h.svc.List(r.Context(), q.Get("q"), q.Get("visibility"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesOrEmpty(cats))
}

// ListPublic handles GET /api/request-categories: the categories offered
// when creating a request.
func (h *CategoryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListPublic(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesOrEmpty(cats))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := category.CreateInput{}
	if payload.Name != nil {
		in.Name = *payload.Name
	}
	if payload.Description != nil {
		in.Description = *payload.Description
	}
	if payload.Visibility != nil {
		in.Visibility = *payload.Visibility
	}

	cat, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.svc.Update(r.Context(), r.PathValue("id"), category.UpdateInput{
		Name:        payload.Name,
		Description: payload.Description,
		Visibility:  payload.Visibility,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// Delete handles DELETE /api/categories/{id}. A category still referenced
// by requests answers 409 with the usage count.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func categoriesOrEmpty(cats []category.Category) []category.Category {
	if cats == nil {
		return []category.Category{}
	}
	return cats
}
