package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"deadline/models"
	"deadline/utils"
)

// AuthMiddleware validates session tokens and exposes the account identity
// to handlers via request context
type AuthMiddleware struct {
	jwtSecret []byte
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: []byte(jwtSecret)}
}

// RequireAuth validates the bearer token and sets user_id and role in the
// request context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization format. Expected: Bearer <token>")
			return
		}

		userID, role, err := utils.ParseSessionJWT(parts[1], m.jwtSecret)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", userID)
		ctx = context.WithValue(ctx, "role", role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole wraps RequireAuth and additionally restricts the endpoint to
// the given roles
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value("role").(models.UserRole)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Role not found in token")
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			respondWithError(w, http.StatusForbidden, "Forbidden", fmt.Sprintf("Role %q is not allowed on this endpoint", role))
		}))
	}
}

// Helper function for error responses
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json := fmt.Sprintf(`{"error":"%s","message":"%s","code":%d}`, errorType, message, statusCode)
	w.Write([]byte(json))
}
