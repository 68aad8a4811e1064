package repository

import (
	"encoding/json"
	"fmt"
	"log"

	"deadline/models"
	"deadline/storage"
)

const (
	keySession         = "session"
	keyRegisteredUsers = "registered_users"
)

// SessionRepository persists the current session and the registered-user
// table, one storage key each
type SessionRepository struct {
	store *storage.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store *storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// SaveSession writes the current session
func (r *SessionRepository) SaveSession(session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Put(keySession, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// LoadSession reads the persisted session. A corrupt entry is cleared and
// treated as "no session"; restore degrades silently rather than failing
// startup.
func (r *SessionRepository) LoadSession() (*models.Session, error) {
	value, ok, err := r.store.Get(keySession)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(value, &session); err != nil {
		log.Printf("[storage] Corrupt session discarded: %v", err)
		if err := r.store.Delete(keySession); err != nil {
			return nil, fmt.Errorf("failed to clear corrupt session: %w", err)
		}
		return nil, nil
	}
	return &session, nil
}

// ClearSession removes the session key. The registered-user table is
// untouched.
func (r *SessionRepository) ClearSession() error {
	if err := r.store.Delete(keySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// LoadRegisteredUsers reads the registered-user table. Absent or corrupt
// data yields an empty table.
func (r *SessionRepository) LoadRegisteredUsers() ([]models.CredentialRecord, error) {
	value, ok, err := r.store.Get(keyRegisteredUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load registered users: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []models.CredentialRecord
	if err := json.Unmarshal(value, &users); err != nil {
		log.Printf("[storage] Corrupt registered-user table discarded: %v", err)
		return nil, nil
	}
	return users, nil
}

// SaveRegisteredUsers rewrites the full registered-user table
func (r *SessionRepository) SaveRegisteredUsers(users []models.CredentialRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode registered users: %w", err)
	}
	if err := r.store.Put(keyRegisteredUsers, data); err != nil {
		return fmt.Errorf("failed to persist registered users: %w", err)
	}
	return nil
}
