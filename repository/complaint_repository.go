package repository

import (
	"encoding/json"
	"fmt"
	"log"

	"deadline/models"
	"deadline/storage"
)

const keyComplaints = "complaints"

// ComplaintRepository persists the complaint list under a single storage key.
// Every save is a full-list rewrite; there is no per-record persistence.
type ComplaintRepository struct {
	store *storage.Store
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(store *storage.Store) *ComplaintRepository {
	return &ComplaintRepository{store: store}
}

// Load reads the persisted complaint list. The second return value is false
// when no usable list exists: absent key, or a value that fails to parse.
// A corrupt value is treated as absent so the caller can fall back to seed
// data; the failure is logged locally and never propagated.
func (r *ComplaintRepository) Load() ([]models.Complaint, bool, error) {
	value, ok, err := r.store.Get(keyComplaints)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load complaints: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var complaints []models.Complaint
	if err := json.Unmarshal(value, &complaints); err != nil {
		log.Printf("[storage] Corrupt complaint list discarded: %v", err)
		return nil, false, nil
	}
	return complaints, true, nil
}

// SaveAll rewrites the full persisted complaint list
func (r *ComplaintRepository) SaveAll(complaints []models.Complaint) error {
	data, err := json.Marshal(complaints)
	if err != nil {
		return fmt.Errorf("failed to encode complaints: %w", err)
	}
	if err := r.store.Put(keyComplaints, data); err != nil {
		return fmt.Errorf("failed to persist complaints: %w", err)
	}
	return nil
}
