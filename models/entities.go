package models

import "time"

// UserRole represents the dashboard role of an account
type UserRole string

const (
	RoleCitizen   UserRole = "citizen"
	RoleOfficer   UserRole = "officer"
	RoleAuthority UserRole = "authority"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether role is one of the four known dashboard roles
func ValidRole(role UserRole) bool {
	switch role {
	case RoleCitizen, RoleOfficer, RoleAuthority, RoleAdmin:
		return true
	}
	return false
}

// Severity represents complaint severity tiers
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ValidSeverity reports whether sev is a known severity tier
func ValidSeverity(sev Severity) bool {
	switch sev {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ComplaintStatus represents the possible statuses of a complaint
type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "open"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusEscalated  ComplaintStatus = "escalated"
	StatusResolved   ComplaintStatus = "resolved"
	StatusFailed     ComplaintStatus = "failed"
)

// ValidStatus reports whether status is a known complaint status
func ValidStatus(status ComplaintStatus) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusEscalated, StatusResolved, StatusFailed:
		return true
	}
	return false
}

// User is the public projection of an account. It never carries credentials;
// the session store persists this shape under the session key.
type User struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone,omitempty"`
	Role                 UserRole `json:"role"`
	AssignedComplaintIDs []string `json:"assigned_complaints,omitempty"`
}

// CredentialRecord is a signup-created account as persisted in the
// registered-user table. Passwords are stored as bcrypt hashes only.
type CredentialRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"password_hash"`
}

// Session is the persisted shape of the current authenticated identity
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Location is where a complaint was raised
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Region  string  `json:"region"`
}

// Assignee is the staff member a complaint is currently assigned to
type Assignee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Department string `json:"department"`
}

// Complaint is the authoritative complaint record.
//
// Invariants maintained by the complaint store:
//   - ID is unique and immutable after creation (format CMP-###)
//   - CreatedAt is immutable; UpdatedAt >= CreatedAt and bumps on every mutation
//   - EscalationLevel starts at 1 and never drops below 1
//   - SLAProgress stays within [0,100]
type Complaint struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Severity        Severity        `json:"severity"`
	Status          ComplaintStatus `json:"status"`
	SLAProgress     int             `json:"sla_progress"`
	SLARemaining    string          `json:"sla_remaining"`
	SLADuration     int             `json:"sla_duration"`
	Category        string          `json:"category"`
	Location        Location        `json:"location"`
	Assignee        Assignee        `json:"assignee"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	EscalationLevel int             `json:"escalation_level"`
	RetryCount      int             `json:"retry_count"`
	Attachments     []string        `json:"attachments"`
	Notes           []string        `json:"notes"`
}

// ComplaintDraft is the caller-supplied part of a new complaint: the full
// complaint shape minus identity, timestamps and lifecycle counters, which
// the store assigns at creation time.
type ComplaintDraft struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Severity     Severity        `json:"severity"`
	Status       ComplaintStatus `json:"status"`
	SLAProgress  int             `json:"sla_progress"`
	SLARemaining string          `json:"sla_remaining"`
	SLADuration  int             `json:"sla_duration"`
	Category     string          `json:"category"`
	Location     Location        `json:"location"`
	Assignee     Assignee        `json:"assignee"`
	Attachments  []string        `json:"attachments"`
	Notes        []string        `json:"notes"`
}

// ComplaintUpdate is a partial update; nil fields are left untouched.
// ID and CreatedAt are not updatable by design.
type ComplaintUpdate struct {
	Title           *string          `json:"title,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Severity        *Severity        `json:"severity,omitempty"`
	Status          *ComplaintStatus `json:"status,omitempty"`
	SLAProgress     *int             `json:"sla_progress,omitempty"`
	SLARemaining    *string          `json:"sla_remaining,omitempty"`
	SLADuration     *int             `json:"sla_duration,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Location        *Location        `json:"location,omitempty"`
	Assignee        *Assignee        `json:"assignee,omitempty"`
	EscalationLevel *int             `json:"escalation_level,omitempty"`
	RetryCount      *int             `json:"retry_count,omitempty"`
	Attachments     *[]string        `json:"attachments,omitempty"`
	Notes           *[]string        `json:"notes,omitempty"`
}
