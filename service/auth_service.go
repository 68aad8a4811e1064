package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"deadline/models"
	"deadline/repository"
	"deadline/utils"
)

// Credential errors returned to callers as typed results, never fatal.
// Login reports one error for both unknown email and wrong password.
var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrDemoModeDisabled       = errors.New("role switching requires demo mode")
)

// DemoAccount is one of the four fixed credential sets used to preview each
// role dashboard without real registration
type DemoAccount struct {
	ID                   string
	Name                 string
	Email                string
	Password             string
	Role                 models.UserRole
	AssignedComplaintIDs []string
}

// demoAccounts is the fixed demo table. These are compiled-in demo fixtures;
// only signup-created credentials are ever persisted, and those are hashed.
var demoAccounts = []DemoAccount{
	{ID: "demo-admin", Name: "Admin User", Email: "admin@deadline.test", Password: "pass", Role: models.RoleAdmin},
	{ID: "demo-officer", Name: "Officer Demo", Email: "officer@deadline.test", Password: "pass", Role: models.RoleOfficer,
		AssignedComplaintIDs: []string{"CMP-001", "CMP-003", "CMP-005"}},
	{ID: "demo-authority", Name: "Authority Demo", Email: "authority@deadline.test", Password: "pass", Role: models.RoleAuthority},
	{ID: "demo-citizen", Name: "Citizen Demo", Email: "citizen@deadline.test", Password: "pass", Role: models.RoleCitizen},
}

// SignupData is the caller-supplied account data for signup
type SignupData struct {
	Name     string
	Email    string
	Phone    string
	Role     models.UserRole
	Password string
}

// AuthService owns the current session and the account registry. There is
// exactly one active session at a time, or none. Every session change is
// persisted synchronously before the call returns.
type AuthService struct {
	repo          *repository.SessionRepository
	jwtSecret     []byte
	tokenTTLHours int
	demoEnabled   bool
	loginDelay    time.Duration

	mu        sync.RWMutex
	current   *models.User
	listeners []func(*models.User)
}

// NewAuthService creates a new auth service. loginDelay models the original
// network latency on login/signup; pass 0 in tests.
func NewAuthService(
	repo *repository.SessionRepository,
	jwtSecret string,
	tokenTTLHours int,
	demoEnabled bool,
	loginDelay time.Duration,
) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		tokenTTLHours: tokenTTLHours,
		demoEnabled:   demoEnabled,
		loginDelay:    loginDelay,
	}
}

// RestoreSession runs once at startup: it reads the persisted session and
// either adopts it or (on corrupt storage, handled by the repository)
// starts anonymous. Returns the restored user, nil when anonymous.
func (s *AuthService) RestoreSession() (*models.User, error) {
	session, err := s.repo.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	s.mu.Lock()
	user := session.User
	s.current = &user
	s.mu.Unlock()

	log.Printf("[auth] Session restored for %s (%s)", user.Email, user.Role)
	s.notify(&user)
	return &user, nil
}

// Login authenticates against the fixed demo table first, then the persisted
// registered-user table. On success the matched account becomes the current
// session and is persisted with a fresh token. Failure never mutates session
// state.
func (s *AuthService) Login(email, password string) (*models.Session, error) {
	s.simulateLatency()

	for _, acc := range demoAccounts {
		if strings.EqualFold(acc.Email, email) && acc.Password == password {
			user := models.User{
				ID:                   acc.ID,
				Name:                 acc.Name,
				Email:                acc.Email,
				Role:                 acc.Role,
				AssignedComplaintIDs: append([]string(nil), acc.AssignedComplaintIDs...),
			}
			return s.setSession(user)
		}
	}

	registered, err := s.repo.LoadRegisteredUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to check registered users: %w", err)
	}
	for _, rec := range registered {
		if !strings.EqualFold(rec.Email, email) {
			continue
		}
		if utils.CheckPassword(password, rec.PasswordHash) != nil {
			// Same error as unknown email: callers cannot probe which
			// addresses are registered.
			return nil, ErrInvalidCredentials
		}
		user := models.User{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
			Phone: rec.Phone,
			Role:  rec.Role,
		}
		return s.setSession(user)
	}

	return nil, ErrInvalidCredentials
}

// Signup registers a new account and logs it in. Email uniqueness is
// enforced case-insensitively across the demo table and all registered
// records. Signup and the implicit login are atomic from the caller's view.
func (s *AuthService) Signup(data SignupData) (*models.Session, error) {
	s.simulateLatency()

	for _, acc := range demoAccounts {
		if strings.EqualFold(acc.Email, data.Email) {
			return nil, ErrEmailAlreadyRegistered
		}
	}

	registered, err := s.repo.LoadRegisteredUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to check registered users: %w", err)
	}
	for _, rec := range registered {
		if strings.EqualFold(rec.Email, data.Email) {
			return nil, ErrEmailAlreadyRegistered
		}
	}

	hash, err := utils.HashPassword(data.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := models.CredentialRecord{
		ID:           "user-" + uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Role:         data.Role,
		PasswordHash: hash,
	}

	registered = append(registered, record)
	if err := s.repo.SaveRegisteredUsers(registered); err != nil {
		return nil, fmt.Errorf("failed to persist registered users: %w", err)
	}

	user := models.User{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Phone: record.Phone,
		Role:  record.Role,
	}
	log.Printf("[auth] Registered new %s account %s", user.Role, user.Email)
	return s.setSession(user)
}

// Logout clears the current session and its persistence entry. Registered
// accounts themselves persist.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.ClearSession(); err != nil {
		return err
	}
	s.notify(nil)
	return nil
}

// SwitchRole replaces the current session with the fixed demo account for
// role, with no password check. Demo-mode only; a non-demo deployment
// refuses it outright.
func (s *AuthService) SwitchRole(role models.UserRole) (*models.Session, error) {
	if !s.demoEnabled {
		return nil, ErrDemoModeDisabled
	}

	for _, acc := range demoAccounts {
		if acc.Role == role {
			user := models.User{
				ID:                   acc.ID,
				Name:                 acc.Name,
				Email:                acc.Email,
				Role:                 acc.Role,
				AssignedComplaintIDs: append([]string(nil), acc.AssignedComplaintIDs...),
			}
			return s.setSession(user)
		}
	}
	return nil, fmt.Errorf("no demo account for role %q", role)
}

// CurrentUser returns the active session's user, nil when anonymous
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether a session is active
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Subscribe registers a listener invoked synchronously after every session
// change, with the new user (nil on logout). A listener reading back through
// CurrentUser immediately sees the change.
func (s *AuthService) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// setSession makes user the current session and persists {user, token}
// before returning
func (s *AuthService) setSession(user models.User) (*models.Session, error) {
	token, err := utils.GenerateSessionJWT(user.ID, user.Role, s.jwtSecret, s.tokenTTLHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.Session{User: user, Token: token}
	if err := s.repo.SaveSession(session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	current := user
	s.current = &current
	s.mu.Unlock()

	log.Printf("[auth] Session set for %s (%s)", user.Email, user.Role)
	s.notify(&user)
	return session, nil
}

// simulateLatency models the original fixed network delay on login/signup.
// It always completes; there is no cancellation.
func (s *AuthService) simulateLatency() {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}
}

func (s *AuthService) notify(user *models.User) {
	s.mu.RLock()
	listeners := append(([]func(*models.User))(nil), s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(user)
	}
}
