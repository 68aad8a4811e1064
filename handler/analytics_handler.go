package handler

import (
	"net/http"

	"deadline/service"
)

// AnalyticsHandler serves the derived dashboard aggregates. All endpoints
// are pure reads over the complaint store.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// Summary handles GET /analytics/summary
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Summary())
}

// Hotspots handles GET /analytics/hotspots
func (h *AnalyticsHandler) Hotspots(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hotspots": h.service.Hotspots(),
	})
}

// Officers handles GET /analytics/officers
func (h *AnalyticsHandler) Officers(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"officers": h.service.OfficerPerformance(),
	})
}
