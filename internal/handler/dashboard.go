package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/election-manager/internal/service"
)

// DashboardHandler serves aggregate statistics for the frontend dashboard.
type DashboardHandler struct {
	statsService *service.StatsService
	logger       *slog.Logger
}

func NewDashboardHandler(statsService *service.StatsService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// HandleStats returns the contest-wide counters.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope("stats", stats))
}
