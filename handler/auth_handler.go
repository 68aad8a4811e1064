package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"deadline/models"
	"deadline/service"
)

// AuthHandler handles session endpoints: login, signup, logout, me and the
// demo-only role switch
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	Role     models.UserRole `json:"role"`
	Password string          `json:"password"`
}

// SwitchRoleRequest represents a demo role-switch request
type SwitchRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// AuthResponse is returned by login, signup and switch-role
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Email and password are required")
		return
	}

	session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    &session.User,
		Message: "Login successful",
	})
}

// Signup handles POST /auth/signup. A successful signup logs the new account
// in immediately.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Name, email and password are required")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleCitizen
	}
	if !models.ValidRole(req.Role) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Unknown role")
		return
	}

	session, err := h.authService.Signup(service.SignupData{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			respondWithError(w, http.StatusConflict, "Conflict", "Email already registered")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Signup failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    &session.User,
		Message: "Account created",
	})
}

// Logout handles POST /auth/logout: clears the session and its persistence
// entry
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Logout failed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Logged out"})
}

// Me handles GET /auth/me: returns the current session's user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.authService.CurrentUser()
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "No active session")
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// SwitchRole handles POST /auth/switch-role. The route is only registered in
// demo mode; the service refuses it as well when demo mode is off.
func (h *AuthHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req SwitchRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if !models.ValidRole(req.Role) {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Unknown role")
		return
	}

	session, err := h.authService.SwitchRole(req.Role)
	if err != nil {
		if errors.Is(err, service.ErrDemoModeDisabled) {
			respondWithError(w, http.StatusForbidden, "Forbidden", "Role switching requires demo mode")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Role switch failed")
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    &session.User,
		Message: "Role switched",
	})
}
