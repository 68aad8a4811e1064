package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"deadline/config"
	"deadline/repository"
	"deadline/routes"
	"deadline/seed"
	"deadline/service"
	"deadline/storage"
	"deadline/worker"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	if cfg.Demo.Enabled {
		log.Printf("[demo] Demo mode ENABLED: demo accounts and role switching are active")
	} else {
		log.Printf("[demo] Demo mode disabled: role switching is not registered")
	}

	// Open the local store (single file, single writer)
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer store.Close()
	log.Printf("Local store opened at %s", cfg.Storage.Path)

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(store)
	complaintRepo := repository.NewComplaintRepository(store)

	// Initialize services
	escalationService := service.NewEscalationService(seed.Escalations(), seed.PolicyRules())
	complaintService := service.NewComplaintService(complaintRepo, escalationService)
	analyticsService := service.NewAnalyticsService(complaintService)
	authService := service.NewAuthService(
		sessionRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTLHours,
		cfg.Demo.Enabled,
		time.Duration(cfg.Demo.LoginDelayMS)*time.Millisecond,
	)

	// One-time hydration: complaint list (seed fallback) and persisted session
	if err := complaintService.Initialize(); err != nil {
		log.Fatalf("Failed to initialize complaint store: %v", err)
	}
	if user, err := authService.RestoreSession(); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	} else if user == nil {
		log.Println("[auth] No persisted session, starting anonymous")
	}

	// Snapshot worker interval: config-driven, default hourly
	const defaultSnapshotIntervalSec = 3600
	intervalSeconds := cfg.Storage.SnapshotIntervalSeconds
	if intervalSeconds <= 0 {
		intervalSeconds = defaultSnapshotIntervalSec
	}
	snapshotWorker := worker.NewSnapshotWorker(
		store,
		cfg.Storage.SnapshotDir,
		time.Duration(intervalSeconds)*time.Second,
	)
	log.Printf("Snapshot worker interval: %d seconds", intervalSeconds)
	snapshotWorker.Start()
	defer snapshotWorker.Stop()

	// Setup routes
	router := routes.SetupRoutes(
		authService,
		complaintService,
		escalationService,
		analyticsService,
		cfg,
	)

	// Add CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			// Handle preflight requests
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	// Wrap router with CORS middleware
	handler := corsHandler(router)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
