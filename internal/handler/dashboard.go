package handler

import (
	"net/http"

	"github.com/legionhq/legion-tracker/internal/service"
)

// DashboardHandler serves the summary counts for the SPA landing page.
type DashboardHandler struct {
	statsSvc *service.StatsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(statsSvc *service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsSvc: statsSvc}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.Dashboard(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, stats)
}
