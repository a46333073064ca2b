package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/ctxutil"
	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/domain/report"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/domain/shortlist"
	"github.com/neighborly/carehub/internal/domain/user"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// usernameFromCtx returns the authenticated caller's username, or "" for
// anonymous requests.
func usernameFromCtx(r *http.Request) string {
	identity, _ := ctxutil.IdentityFromCtx(r.Context())
	return identity.Username
}

// handleError maps domain errors onto HTTP statuses. Anything unmapped is a
// 500 and gets logged; mapped errors are the client's problem and are not.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var validation *request.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation.Error())
		return
	}

	var inUse *category.InUseError
	if errors.As(err, &inUse) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":      "category is in use",
			"usageCount": inUse.UsageCount,
		})
		return
	}

	switch {
	case errors.Is(err, request.ErrNotFound),
		errors.Is(err, shortlist.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, category.ErrNameTaken),
		errors.Is(err, user.ErrUsernameTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, user.ErrSuspended):
		writeError(w, http.StatusForbidden, "account suspended")
	case errors.Is(err, request.ErrInvalidInput),
		errors.Is(err, shortlist.ErrInvalidInput),
		errors.Is(err, category.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, report.ErrInvalidPeriod):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
