package models

import "time"

// EscalationStatus represents the state of an escalation record
type EscalationStatus string

const (
	EscalationPending  EscalationStatus = "pending"
	EscalationActive   EscalationStatus = "active"
	EscalationResolved EscalationStatus = "resolved"
	EscalationFailed   EscalationStatus = "failed"
)

// Escalation is a read-only record of a complaint moving up the departmental
// chain. Many escalations may reference one complaint over its lifetime; no
// store mutates these in the current scope.
type Escalation struct {
	ID             string           `json:"id"`
	ComplaintID    string           `json:"complaint_id"`
	ComplaintTitle string           `json:"complaint_title"`
	Level          int              `json:"level"`
	Status         EscalationStatus `json:"status"`
	RetryCount     int              `json:"retry_count"`
	MaxRetries     int              `json:"max_retries"`
	AssignedTo     string           `json:"assigned_to"`
	Department     string           `json:"department"`
	CreatedAt      time.Time        `json:"created_at"`
	FailReason     string           `json:"fail_reason,omitempty"`
}

// EscalationLevel is one step of a policy rule's departmental chain.
// TimeThreshold is hours until that level trips.
type EscalationLevel struct {
	Level         int    `json:"level"`
	Title         string `json:"title"`
	Department    string `json:"department"`
	TimeThreshold int    `json:"time_threshold"`
}

// PolicyRule maps a severity tier to its SLA duration and escalation chain.
// Levels are ordered by ascending level and ascending time threshold.
// Only SLADuration is editable; the chain is fixed reference data.
type PolicyRule struct {
	ID               string            `json:"id"`
	Severity         Severity          `json:"severity"`
	SLADuration      int               `json:"sla_duration"`
	EscalationLevels []EscalationLevel `json:"escalation_levels"`
}
