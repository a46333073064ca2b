package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/neighborly/carehub/internal/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an id for log correlation, honoring an
// id supplied by the caller and echoing it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
