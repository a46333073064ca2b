package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/auth"
	"github.com/neighborly/carehub/internal/ctxutil"
	"github.com/neighborly/carehub/internal/domain/user"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Authenticate(ctx context.Context, username, password string) (*user.Account, error)
	Register(ctx context.Context, in user.CreateInput) (*user.Account, error)
	Get(ctx context.Context, username string) (*user.Account, error)
}

type tokenIssuer interface {
	GenerateAccessToken(identity auth.Identity) (string, error)
}

// AuthHandler serves login, registration and session endpoints.
type AuthHandler struct {
	svc    authService
	tokens tokenIssuer
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, tokens tokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.tokens.GenerateAccessToken(auth.Identity{
		Username: acct.Username,
		Role:     string(acct.Role),
		FullName: acct.FullName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: acct.Public()})
}

// Register handles POST /api/register. Self-registered accounts are always
// requesters.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, err := h.svc.Register(r.Context(), user.CreateInput{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.tokens.GenerateAccessToken(auth.Identity{
		Username: acct.Username,
		Role:     string(acct.Role),
		FullName: acct.FullName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: acct.Public()})
}

// Logout handles POST /api/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists for API compatibility.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Whoami handles GET /api/whoami.
func (h *AuthHandler) Whoami(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	acct, err := h.svc.Get(r.Context(), identity.Username)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acct.Public())
}
