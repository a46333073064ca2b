package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/neighborly/carehub/internal/domain/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	CreateProfile(ctx context.Context, in user.CreateInput) (*user.Account, error)
	GetByID(ctx context.Context, id int) (*user.Account, error)
	Update(ctx context.Context, id int, in user.UpdateInput) (*user.Account, error)
	SetStatus(ctx context.Context, id int, status string) (*user.Account, error)
	List(ctx context.Context, role string) ([]user.Account, error)
	Search(ctx context.Context, query string) ([]user.Account, error)
}

// UserHandler serves the admin account-management endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type userPayload struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// List handles GET /api/users. A q parameter searches username, full name
// and email; a role parameter restricts to one role.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var accts []user.Account
	var err error
	if query := q.Get("q"); query != "" {
		accts, err = h.svc.Search(r.Context(), query)
	} else {
		accts, err = h.svc.List(r.Context(), q.Get("role"))
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	profiles := make([]user.Profile, 0, len(accts))
	for _, acct := range accts {
		profiles = append(profiles, acct.Public())
	}
	writeJSON(w, http.StatusOK, profiles)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	acct, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acct.Public())
}

// Create handles POST /api/users: an admin provisioning an account in any
// role.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := user.CreateInput{}
	if payload.FullName != nil {
		in.FullName = *payload.FullName
	}
	if payload.Email != nil {
		in.Email = *payload.Email
	}
	if payload.Username != nil {
		in.Username = *payload.Username
	}
	if payload.Password != nil {
		in.Password = *payload.Password
	}
	if payload.Role != nil {
		in.Role = *payload.Role
	}

	acct, err := h.svc.CreateProfile(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, acct.Public())
}

// Update handles PUT /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, err := h.svc.Update(r.Context(), id, user.UpdateInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Username: payload.Username,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acct.Public())
}

// SetStatus handles PUT /api/users/{id}/status: activate or suspend.
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, err := h.svc.SetStatus(r.Context(), id, payload.Status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acct.Public())
}

func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}
