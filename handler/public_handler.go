package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"deadline/service"
)

// PublicHandler serves the unauthenticated complaint tracking view.
// Whitelisted fields only; no reporter or assignee details.
type PublicHandler struct {
	service *service.ComplaintService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(svc *service.ComplaintService) *PublicHandler {
	return &PublicHandler{service: svc}
}

// publicComplaint is the public-safe projection of a complaint
type publicComplaint struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Status          string `json:"status"`
	Severity        string `json:"severity"`
	Category        string `json:"category"`
	Region          string `json:"region"`
	SLARemaining    string `json:"sla_remaining"`
	EscalationLevel int    `json:"escalation_level"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// GetPublicComplaint handles GET /public/complaints/{id}: the shareable
// tracking page lookup. No auth; the ID match is case-insensitive.
func (h *PublicHandler) GetPublicComplaint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	complaint, ok := h.service.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not Found", "Complaint not found")
		return
	}

	respondWithJSON(w, http.StatusOK, publicComplaint{
		ID:              complaint.ID,
		Title:           complaint.Title,
		Status:          string(complaint.Status),
		Severity:        string(complaint.Severity),
		Category:        complaint.Category,
		Region:          complaint.Location.Region,
		SLARemaining:    complaint.SLARemaining,
		EscalationLevel: complaint.EscalationLevel,
		CreatedAt:       complaint.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       complaint.UpdatedAt.Format(time.RFC3339),
	})
}
