package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"deadline/models"
	"deadline/repository"
	"deadline/seed"
)

// ComplaintService owns the authoritative in-memory complaint list, backed
// by the local store. Every add/update rewrites the full persisted list
// before the call returns, so reads after a write always observe it.
type ComplaintService struct {
	repo     *repository.ComplaintRepository
	policies *EscalationService

	mu         sync.RWMutex
	complaints []models.Complaint
	listeners  []func()
}

// NewComplaintService creates a new complaint service. policies supplies the
// severity→SLA table used to fill SLA defaults at creation time.
func NewComplaintService(repo *repository.ComplaintRepository, policies *EscalationService) *ComplaintService {
	return &ComplaintService{repo: repo, policies: policies}
}

// Initialize hydrates the list from storage once at startup. Absent or
// corrupt persisted data falls back to the built-in sample dataset; that is
// demo data, not a user's work product, so the fallback is silent.
func (s *ComplaintService) Initialize() error {
	complaints, ok, err := s.repo.Load()
	if err != nil {
		return err
	}
	if !ok {
		complaints = seed.Complaints()
		if err := s.repo.SaveAll(complaints); err != nil {
			return err
		}
		log.Printf("[complaint] Seeded %d sample complaints", len(complaints))
	} else {
		log.Printf("[complaint] Hydrated %d complaints from storage", len(complaints))
	}

	s.mu.Lock()
	s.complaints = complaints
	s.mu.Unlock()
	return nil
}

// Add creates a complaint from draft and returns its generated ID.
// Lifecycle fields are assigned here: the next CMP-### identifier,
// createdAt=updatedAt=now, escalationLevel=1, retryCount=0. The new record
// is prepended (most-recent-first display convention) and the full list is
// persisted before returning.
func (s *ComplaintService) Add(draft models.ComplaintDraft) (string, error) {
	s.mu.Lock()

	now := time.Now().UTC()
	complaint := models.Complaint{
		ID:              s.nextIDLocked(),
		Title:           draft.Title,
		Description:     draft.Description,
		Severity:        draft.Severity,
		Status:          draft.Status,
		SLAProgress:     clampProgress(draft.SLAProgress),
		SLARemaining:    draft.SLARemaining,
		SLADuration:     draft.SLADuration,
		Category:        draft.Category,
		Location:        draft.Location,
		Assignee:        draft.Assignee,
		CreatedAt:       now,
		UpdatedAt:       now,
		EscalationLevel: 1,
		RetryCount:      0,
		Attachments:     draft.Attachments,
		Notes:           draft.Notes,
	}
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}
	if complaint.Attachments == nil {
		complaint.Attachments = []string{}
	}
	if complaint.Notes == nil {
		complaint.Notes = []string{}
	}

	// SLA fields are a one-time snapshot from the severity policy; they are
	// not advanced by any clock afterwards.
	if complaint.SLADuration == 0 && s.policies != nil {
		if rule, ok := s.policies.PolicyForSeverity(complaint.Severity); ok {
			complaint.SLADuration = rule.SLADuration
		}
	}
	if complaint.SLARemaining == "" && complaint.SLADuration > 0 {
		complaint.SLARemaining = fmt.Sprintf("%dh 00m", complaint.SLADuration)
	}

	next := make([]models.Complaint, 0, len(s.complaints)+1)
	next = append(next, complaint)
	next = append(next, s.complaints...)

	if err := s.repo.SaveAll(next); err != nil {
		s.mu.Unlock()
		return "", err
	}
	s.complaints = next
	s.mu.Unlock()

	log.Printf("[complaint] Created %s (%s/%s)", complaint.ID, complaint.Severity, complaint.Status)
	s.notify()
	return complaint.ID, nil
}

// Get returns the complaint with the given ID, matching case-insensitively
func (s *ComplaintService) Get(id string) (models.Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.complaints {
		if strings.EqualFold(c.ID, id) {
			return c, true
		}
	}
	return models.Complaint{}, false
}

// List returns the current complaint list, most recent first
func (s *ComplaintService) List() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Complaint, len(s.complaints))
	copy(out, s.complaints)
	return out
}

// Update shallow-merges the provided fields into the matching record and
// bumps updatedAt. ID and createdAt never change; escalationLevel cannot
// drop below 1; slaProgress is clamped to [0,100]. An unknown ID is a
// silent no-op: callers may race with list reloads, and that leniency is
// part of the store's contract.
func (s *ComplaintService) Update(id string, update models.ComplaintUpdate) error {
	s.mu.Lock()

	idx := -1
	for i, c := range s.complaints {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	merged := s.complaints[idx]
	applyUpdate(&merged, update)
	merged.UpdatedAt = bumpedNow(merged.UpdatedAt)

	next := make([]models.Complaint, len(s.complaints))
	copy(next, s.complaints)
	next[idx] = merged

	if err := s.repo.SaveAll(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.complaints = next
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddNote appends a note to the matching record, bumping updatedAt.
// Unknown IDs are a silent no-op, like Update.
func (s *ComplaintService) AddNote(id, note string) error {
	s.mu.RLock()
	var notes []string
	found := false
	for _, c := range s.complaints {
		if c.ID == id {
			notes = append(append([]string(nil), c.Notes...), note)
			found = true
			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return nil
	}
	return s.Update(id, models.ComplaintUpdate{Notes: &notes})
}

// Subscribe registers a listener invoked synchronously after every mutation
// persists. A listener reading back through List/Get immediately sees the
// new value.
func (s *ComplaintService) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// nextIDLocked generates the next CMP-### identifier, zero-padded to width
// 3. The counter is collision-checked against the highest existing numeric
// suffix rather than the list length, so an add after out-of-band removal
// can never reissue a used ID. Caller holds mu.
func (s *ComplaintService) nextIDLocked() string {
	max := 0
	for _, c := range s.complaints {
		suffix, ok := strings.CutPrefix(strings.ToUpper(c.ID), "CMP-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("CMP-%03d", max+1)
}

// notify invokes listeners after the mutation has committed and persisted,
// so a listener reading back through List/Get sees the new value
func (s *ComplaintService) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// applyUpdate shallow-merges set fields of update into c
func applyUpdate(c *models.Complaint, update models.ComplaintUpdate) {
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.Severity != nil {
		c.Severity = *update.Severity
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	if update.SLAProgress != nil {
		c.SLAProgress = clampProgress(*update.SLAProgress)
	}
	if update.SLARemaining != nil {
		c.SLARemaining = *update.SLARemaining
	}
	if update.SLADuration != nil {
		c.SLADuration = *update.SLADuration
	}
	if update.Category != nil {
		c.Category = *update.Category
	}
	if update.Location != nil {
		c.Location = *update.Location
	}
	if update.Assignee != nil {
		c.Assignee = *update.Assignee
	}
	if update.EscalationLevel != nil && *update.EscalationLevel >= 1 {
		c.EscalationLevel = *update.EscalationLevel
	}
	if update.RetryCount != nil && *update.RetryCount >= 0 {
		c.RetryCount = *update.RetryCount
	}
	if update.Attachments != nil {
		c.Attachments = append([]string(nil), (*update.Attachments)...)
	}
	if update.Notes != nil {
		c.Notes = append([]string(nil), (*update.Notes)...)
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// bumpedNow returns the current time, nudged forward when the clock has not
// advanced past prev, so updatedAt strictly increases on every mutation
func bumpedNow(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
