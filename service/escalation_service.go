package service

import (
	"errors"
	"log"
	"sync"

	"deadline/models"
)

// ErrPolicyNotFound is returned when a policy update targets an unknown rule
var ErrPolicyNotFound = errors.New("policy rule not found")

// EscalationService serves the escalation queue and the severity policy
// table. Both are reference data: no store creates escalations in the
// current scope, and of the policy table only each rule's SLA duration is
// editable.
type EscalationService struct {
	mu          sync.RWMutex
	escalations []models.Escalation
	policies    []models.PolicyRule
}

// NewEscalationService creates a new escalation service over the given
// reference data
func NewEscalationService(escalations []models.Escalation, policies []models.PolicyRule) *EscalationService {
	return &EscalationService{escalations: escalations, policies: policies}
}

// List returns all escalation records
func (s *EscalationService) List() []models.Escalation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Escalation, len(s.escalations))
	copy(out, s.escalations)
	return out
}

// ListByComplaint returns the escalations referencing one complaint. Many
// records may reference the same complaint over its lifetime.
func (s *EscalationService) ListByComplaint(complaintID string) []models.Escalation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Escalation
	for _, esc := range s.escalations {
		if esc.ComplaintID == complaintID {
			out = append(out, esc)
		}
	}
	return out
}

// ListByStatus returns the escalations in the given state
func (s *EscalationService) ListByStatus(status models.EscalationStatus) []models.Escalation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Escalation
	for _, esc := range s.escalations {
		if esc.Status == status {
			out = append(out, esc)
		}
	}
	return out
}

// Policies returns the severity policy table
func (s *EscalationService) Policies() []models.PolicyRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PolicyRule, len(s.policies))
	copy(out, s.policies)
	return out
}

// PolicyForSeverity returns the policy rule for a severity tier
func (s *EscalationService) PolicyForSeverity(sev models.Severity) (models.PolicyRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rule := range s.policies {
		if rule.Severity == sev {
			return rule, true
		}
	}
	return models.PolicyRule{}, false
}

// UpdateSLADuration changes the SLA duration of one policy rule. This is the
// only mutable field of the reference data; the escalation chain itself is
// fixed.
func (s *EscalationService) UpdateSLADuration(policyID string, hours int) error {
	if hours < 1 {
		return errors.New("sla duration must be at least 1 hour")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.policies {
		if s.policies[i].ID == policyID {
			s.policies[i].SLADuration = hours
			log.Printf("[policy] %s SLA duration set to %dh", policyID, hours)
			return nil
		}
	}
	return ErrPolicyNotFound
}
