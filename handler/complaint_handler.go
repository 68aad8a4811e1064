package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"deadline/models"
	"deadline/service"
)

// allowedAttachmentExts is the client-side file-name allow-list. Attachments
// are names only; there is no upload plumbing in this scope.
var allowedAttachmentExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".pdf": true, ".txt": true, ".log": true, ".json": true, ".zip": true,
}

// ComplaintHandler handles HTTP requests for complaints
type ComplaintHandler struct {
	service     *service.ComplaintService
	authService *service.AuthService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(svc *service.ComplaintService, authService *service.AuthService) *ComplaintHandler {
	return &ComplaintHandler{service: svc, authService: authService}
}

// ListComplaints handles GET /complaints. Officers see only their assigned
// set; every other role reads the full list.
func (h *ComplaintHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints := h.service.List()

	role, _ := r.Context().Value("role").(models.UserRole)
	if role == models.RoleOfficer {
		if user := h.authService.CurrentUser(); user != nil && user.Role == models.RoleOfficer {
			assigned := make(map[string]bool, len(user.AssignedComplaintIDs))
			for _, id := range user.AssignedComplaintIDs {
				assigned[strings.ToUpper(id)] = true
			}
			filtered := complaints[:0]
			for _, c := range complaints {
				if assigned[strings.ToUpper(c.ID)] {
					filtered = append(filtered, c)
				}
			}
			complaints = filtered
		}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var draft models.ComplaintDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	if draft.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Title is required")
		return
	}
	if draft.Description == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Description is required")
		return
	}
	if !models.ValidSeverity(draft.Severity) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Severity must be one of low, medium, high, critical")
		return
	}
	if draft.Status != "" && !models.ValidStatus(draft.Status) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Unknown status")
		return
	}
	for _, name := range draft.Attachments {
		if err := validateAttachmentName(name); err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
	}

	// Submissions enter the lifecycle as open.
	if draft.Status == "" {
		draft.Status = models.StatusOpen
	}

	id, err := h.service.Add(draft)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Failed to create complaint")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// GetComplaint handles GET /complaints/{id}; the ID match is
// case-insensitive
func (h *ComplaintHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	complaint, ok := h.service.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not Found", "Complaint not found")
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// UpdateComplaint handles PATCH /complaints/{id}. An unknown ID is a silent
// no-op by store contract; the response is 200 either way.
func (h *ComplaintHandler) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.ComplaintUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if update.Status != nil && !models.ValidStatus(*update.Status) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Unknown status")
		return
	}
	if update.Severity != nil && !models.ValidSeverity(*update.Severity) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Unknown severity")
		return
	}

	if err := h.service.Update(id, update); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Failed to update complaint")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// AddNote handles POST /complaints/{id}/notes
func (h *ComplaintHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if strings.TrimSpace(req.Note) == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Note is required")
		return
	}

	if err := h.service.AddNote(id, req.Note); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Failed to add note")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"success": true})
}

// validateAttachmentName checks a client-supplied attachment file name:
// plain name, sane length, allow-listed extension
func validateAttachmentName(name string) error {
	if name == "" || len(name) > 128 {
		return fmt.Errorf("attachment name must be 1-128 characters")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("attachment name must not contain path separators")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedAttachmentExts[ext] {
		return fmt.Errorf("attachment type %q is not allowed", ext)
	}
	return nil
}

// respondWithJSON writes a JSON response with the given status code
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"error":   errorType,
		"message": message,
		"code":    statusCode,
	})
}
