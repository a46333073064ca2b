package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/neighborly/carehub/internal/domain/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Generate(ctx context.Context, period report.Period) (*report.Report, error)
}

// ReportHandler serves the platform-management reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

// Generate handles GET /api/pm/reports/{period}.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	period, err := report.ParsePeriod(r.PathValue("period"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.Generate(r.Context(), period)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
