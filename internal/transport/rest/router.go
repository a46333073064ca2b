package rest

import (
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/auth"
	"github.com/neighborly/carehub/internal/transport/middleware"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Requests   *RequestHandler
	PIN        *PINHandler
	CSR        *CSRHandler
	Categories *CategoryHandler
	Users      *UserHandler
	Reports    *ReportHandler
	Activity   *ActivityHandler
	Health     *HealthHandler
}

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// NewRouter mounts all routes with the shared middleware chain:
// recovery, request id, logging, then bearer-token resolution. Role guards
// are applied per route group.
func NewRouter(h Handlers, tokens tokenValidator, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Middleware(middleware.RequireAuth)
	admin := middleware.RequireRole("admin")
	csr := middleware.RequireRole("csr")
	pin := middleware.RequireRole("pin")
	pm := middleware.RequireRole("platform")

	// Public
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("POST /api/login", h.Auth.Login)
	mux.HandleFunc("POST /api/register", h.Auth.Register)

	// Any authenticated role
	handle(mux, "POST /api/logout", authed, h.Auth.Logout)
	handle(mux, "GET /api/whoami", authed, h.Auth.Whoami)
	handle(mux, "GET /api/request-categories", authed, h.Categories.ListPublic)

	// Shared request pool
	handle(mux, "GET /api/requests", authed, h.Requests.List)
	handle(mux, "POST /api/requests", authed, h.Requests.Create)
	handle(mux, "GET /api/requests/search", authed, h.Requests.Search)
	handle(mux, "GET /api/requests/{id}/completed", authed, h.Requests.GetCompleted)
	handle(mux, "GET /api/requests/{id}", authed, h.Requests.Get)
	handle(mux, "PUT /api/requests/{id}", authed, h.Requests.Update)
	handle(mux, "DELETE /api/requests/{id}", authed, h.Requests.Delete)
	handle(mux, "PUT /api/requests/{id}/status", authed, h.Requests.UpdateStatus)
	handle(mux, "GET /api/requests/{id}/views", authed, h.Requests.GetViews)
	handle(mux, "POST /api/requests/{id}/views", authed, h.Requests.IncrementViews)
	handle(mux, "GET /api/requests/{id}/shortlist-count", authed, h.Requests.GetShortlistCount)

	// Requester scope
	handle(mux, "GET /api/pin/requests", pin, h.PIN.List)
	handle(mux, "POST /api/pin/requests", pin, h.PIN.Create)
	handle(mux, "GET /api/pin/requests/search", pin, h.PIN.Search)
	handle(mux, "GET /api/pin/requests/{id}", pin, h.PIN.Get)
	handle(mux, "PUT /api/pin/requests/{id}", pin, h.PIN.Update)
	handle(mux, "DELETE /api/pin/requests/{id}", pin, h.PIN.Delete)

	// Case-worker scope
	handle(mux, "GET /api/csr/requests", csr, h.CSR.List)
	handle(mux, "GET /api/csr/requests/search", csr, h.CSR.Search)
	handle(mux, "GET /api/csr/requests/previous", csr, h.CSR.SearchPrevious)
	handle(mux, "GET /api/csr/requests/{id}", csr, h.CSR.Get)
	handle(mux, "POST /api/csr/requests/{id}/assign", csr, h.CSR.Assign)
	handle(mux, "DELETE /api/csr/requests/{id}/assign", csr, h.CSR.Unassign)
	handle(mux, "POST /api/csr/requests/{id}/complete", csr, h.CSR.Complete)
	handle(mux, "GET /api/csr/shortlist", csr, h.CSR.Shortlist)
	handle(mux, "GET /api/csr/shortlist/search", csr, h.CSR.SearchShortlist)
	handle(mux, "POST /api/csr/shortlist/save/{id}", csr, h.CSR.SaveShortlist)
	handle(mux, "DELETE /api/csr/shortlist/{id}", csr, h.CSR.RemoveShortlist)

	// Platform management
	handle(mux, "GET /api/categories", pm, h.Categories.List)
	handle(mux, "POST /api/categories", pm, h.Categories.Create)
	handle(mux, "PUT /api/categories/{id}", pm, h.Categories.Update)
	handle(mux, "DELETE /api/categories/{id}", pm, h.Categories.Delete)
	handle(mux, "GET /api/pm/reports/{period}", pm, h.Reports.Generate)

	// Administration
	handle(mux, "GET /api/users", admin, h.Users.List)
	handle(mux, "POST /api/users", admin, h.Users.Create)
	handle(mux, "GET /api/users/{id}", admin, h.Users.Get)
	handle(mux, "PUT /api/users/{id}", admin, h.Users.Update)
	handle(mux, "PUT /api/users/{id}/status", admin, h.Users.SetStatus)
	handle(mux, "GET /api/admin/activity", admin, h.Activity.List)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Auth(tokens),
	)
	return chain(mux)
}

func handle(mux *http.ServeMux, pattern string, guard middleware.Middleware, fn http.HandlerFunc) {
	mux.Handle(pattern, guard(fn))
}
