package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deadline/models"
	"deadline/service"
)

// EscalationHandler serves the escalation queue and the severity policy
// table
type EscalationHandler struct {
	service *service.EscalationService
}

// NewEscalationHandler creates a new escalation handler
func NewEscalationHandler(svc *service.EscalationService) *EscalationHandler {
	return &EscalationHandler{service: svc}
}

// ListEscalations handles GET /escalations with optional status= and
// complaint= filters
func (h *EscalationHandler) ListEscalations(w http.ResponseWriter, r *http.Request) {
	var escalations []models.Escalation

	switch {
	case r.URL.Query().Get("complaint") != "":
		escalations = h.service.ListByComplaint(r.URL.Query().Get("complaint"))
	case r.URL.Query().Get("status") != "":
		escalations = h.service.ListByStatus(models.EscalationStatus(r.URL.Query().Get("status")))
	default:
		escalations = h.service.List()
	}
	if escalations == nil {
		escalations = []models.Escalation{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"escalations": escalations,
		"count":       len(escalations),
	})
}

// ListPolicies handles GET /policies
func (h *EscalationHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"policies": h.service.Policies(),
	})
}

// UpdatePolicy handles PATCH /policies/{id}. Only the SLA duration is
// editable; the escalation chain is fixed reference data.
func (h *EscalationHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		SLADuration int `json:"sla_duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	if err := h.service.UpdateSLADuration(id, req.SLADuration); err != nil {
		if errors.Is(err, service.ErrPolicyNotFound) {
			respondWithError(w, http.StatusNotFound, "Not Found", "Policy rule not found")
			return
		}
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
