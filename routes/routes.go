package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"deadline/config"
	"deadline/handler"
	"deadline/middleware"
	"deadline/models"
	"deadline/service"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	authService *service.AuthService,
	complaintService *service.ComplaintService,
	escalationService *service.EscalationService,
	analyticsService *service.AnalyticsService,
	cfg *config.Config,
) *mux.Router {
	router := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService, authService)
	publicHandler := handler.NewPublicHandler(complaintService)
	escalationHandler := handler.NewEscalationHandler(escalationService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret)
	staffOnly := authMiddleware.RequireRole(models.RoleOfficer, models.RoleAuthority, models.RoleAdmin)
	reviewOnly := authMiddleware.RequireRole(models.RoleAuthority, models.RoleAdmin)
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	// API v1 routes
	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// Session routes
	auth := apiV1.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	auth.Handle("/logout", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.Logout))).Methods("POST")
	auth.Handle("/me", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.Me))).Methods("GET")
	if cfg.Demo.Enabled {
		// Demo convenience only: preview each role dashboard without
		// re-authenticating. Compiled out of non-demo deployments.
		auth.Handle("/switch-role", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.SwitchRole))).Methods("POST")
	}

	// Complaint routes (protected - require auth)
	complaints := apiV1.PathPrefix("/complaints").Subrouter()
	complaints.Handle("", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.ListComplaints))).Methods("GET")
	complaints.Handle("", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.CreateComplaint))).Methods("POST")
	complaints.Handle("/{id}", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.GetComplaint))).Methods("GET")

	// Triage mutations are staff-only; citizens submit and read
	complaints.Handle("/{id}", staffOnly(http.HandlerFunc(complaintHandler.UpdateComplaint))).Methods("PATCH")
	complaints.Handle("/{id}/notes", staffOnly(http.HandlerFunc(complaintHandler.AddNote))).Methods("POST")

	// Escalation queue and policy table (authority/admin review surfaces)
	apiV1.Handle("/escalations", reviewOnly(http.HandlerFunc(escalationHandler.ListEscalations))).Methods("GET")
	apiV1.Handle("/policies", reviewOnly(http.HandlerFunc(escalationHandler.ListPolicies))).Methods("GET")
	apiV1.Handle("/policies/{id}", adminOnly(http.HandlerFunc(escalationHandler.UpdatePolicy))).Methods("PATCH")

	// Analytics (authority/admin dashboards)
	analytics := apiV1.PathPrefix("/analytics").Subrouter()
	analytics.Handle("/summary", reviewOnly(http.HandlerFunc(analyticsHandler.Summary))).Methods("GET")
	analytics.Handle("/hotspots", reviewOnly(http.HandlerFunc(analyticsHandler.Hotspots))).Methods("GET")
	analytics.Handle("/officers", reviewOnly(http.HandlerFunc(analyticsHandler.Officers))).Methods("GET")

	// Public read-only tracking page by complaint ID (shareable, no auth)
	apiV1.HandleFunc("/public/complaints/{id}", publicHandler.GetPublicComplaint).Methods("GET")

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
