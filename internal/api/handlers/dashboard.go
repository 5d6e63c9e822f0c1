package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/mpatel/task-planner-web/internal/api/middleware"
	"github.com/mpatel/task-planner-web/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dashboard, err := h.dashboardService.Summary(r.Context(), userID, time.Now())
	if err != nil {
		log.Printf("ERROR [handlers.Dashboard] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
