// Package seed holds the built-in sample dataset the stores fall back to
// when no persisted state exists yet, plus the fixed escalation and policy
// reference data.
package seed

import (
	"time"

	"deadline/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

// Complaints returns the built-in sample complaint list, most recent first
// within the original ordering. Callers own the returned slice.
func Complaints() []models.Complaint {
	return []models.Complaint{
		{
			ID:           "CMP-001",
			Title:        "Payment gateway timeout issues",
			Description:  "Multiple users reporting payment failures during checkout",
			Severity:     models.SeverityCritical,
			Status:       models.StatusEscalated,
			SLAProgress:  85,
			SLARemaining: "2h 15m",
			SLADuration:  4,
			Category:     "Technical",
			Location: models.Location{
				Lat: 40.7128, Lng: -74.006,
				Address: "123 Main St, New York, NY", Region: "Northeast",
			},
			Assignee:        models.Assignee{ID: "u1", Name: "Sarah Chen", Initials: "SC", Department: "Technical Support"},
			CreatedAt:       ts("2026-01-05T09:15:00Z"),
			UpdatedAt:       ts("2026-01-07T10:30:00Z"),
			EscalationLevel: 3,
			RetryCount:      0,
			Attachments:     []string{"screenshot1.png", "log-file.txt"},
			Notes:           []string{"Initial triage completed", "Escalated to L2 after 4 hours"},
		},
		{
			ID:           "CMP-002",
			Title:        "User authentication failures",
			Description:  "SSO login not working for enterprise customers",
			Severity:     models.SeverityHigh,
			Status:       models.StatusInProgress,
			SLAProgress:  45,
			SLARemaining: "8h 30m",
			SLADuration:  12,
			Category:     "Security",
			Location: models.Location{
				Lat: 34.0522, Lng: -118.2437,
				Address: "456 Tech Blvd, Los Angeles, CA", Region: "West",
			},
			Assignee:        models.Assignee{ID: "u2", Name: "Mike Ross", Initials: "MR", Department: "Security Team"},
			CreatedAt:       ts("2026-01-06T14:20:00Z"),
			UpdatedAt:       ts("2026-01-07T08:00:00Z"),
			EscalationLevel: 2,
			RetryCount:      1,
			Attachments:     []string{"error-logs.zip"},
			Notes:           []string{"Investigating OAuth provider"},
		},
		{
			ID:           "CMP-003",
			Title:        "Dashboard loading slowly",
			Description:  "Analytics dashboard takes 30+ seconds to load",
			Severity:     models.SeverityMedium,
			Status:       models.StatusOpen,
			SLAProgress:  20,
			SLARemaining: "22h 45m",
			SLADuration:  24,
			Category:     "Performance",
			Location: models.Location{
				Lat: 41.8781, Lng: -87.6298,
				Address: "789 Data Center Rd, Chicago, IL", Region: "Midwest",
			},
			Assignee:        models.Assignee{ID: "u3", Name: "Emma Wilson", Initials: "EW", Department: "Engineering"},
			CreatedAt:       ts("2026-01-07T02:30:00Z"),
			UpdatedAt:       ts("2026-01-07T02:30:00Z"),
			EscalationLevel: 1,
			RetryCount:      0,
			Attachments:     []string{},
			Notes:           []string{},
		},
		{
			ID:           "CMP-004",
			Title:        "Email notifications delayed",
			Description:  "Transactional emails arriving 2-3 hours late",
			Severity:     models.SeverityLow,
			Status:       models.StatusInProgress,
			SLAProgress:  60,
			SLARemaining: "5h 00m",
			SLADuration:  48,
			Category:     "Communication",
			Location: models.Location{
				Lat: 29.7604, Lng: -95.3698,
				Address: "321 Houston Center, Houston, TX", Region: "South",
			},
			Assignee:        models.Assignee{ID: "u4", Name: "James Lee", Initials: "JL", Department: "DevOps"},
			CreatedAt:       ts("2026-01-05T18:45:00Z"),
			UpdatedAt:       ts("2026-01-07T06:15:00Z"),
			EscalationLevel: 1,
			RetryCount:      0,
			Attachments:     []string{"email-queue-status.png"},
			Notes:           []string{"Queue backlog identified"},
		},
		{
			ID:           "CMP-005",
			Title:        "API rate limiting errors",
			Description:  "Enterprise API clients hitting rate limits unexpectedly",
			Severity:     models.SeverityHigh,
			Status:       models.StatusEscalated,
			SLAProgress:  92,
			SLARemaining: "45m",
			SLADuration:  8,
			Category:     "API",
			Location: models.Location{
				Lat: 47.6062, Lng: -122.3321,
				Address: "555 Cloud Way, Seattle, WA", Region: "West",
			},
			Assignee:        models.Assignee{ID: "u1", Name: "Sarah Chen", Initials: "SC", Department: "Technical Support"},
			CreatedAt:       ts("2026-01-06T22:00:00Z"),
			UpdatedAt:       ts("2026-01-07T11:15:00Z"),
			EscalationLevel: 3,
			RetryCount:      2,
			Attachments:     []string{"api-metrics.json"},
			Notes:           []string{"Rate limit configuration reviewed", "Temporary increase applied"},
		},
		{
			ID:           "CMP-006",
			Title:        "Database connection pool exhaustion",
			Description:  "Production database running out of connections during peak hours",
			Severity:     models.SeverityCritical,
			Status:       models.StatusInProgress,
			SLAProgress:  70,
			SLARemaining: "1h 12m",
			SLADuration:  4,
			Category:     "Infrastructure",
			Location: models.Location{
				Lat: 37.7749, Lng: -122.4194,
				Address: "100 DB Lane, San Francisco, CA", Region: "West",
			},
			Assignee:        models.Assignee{ID: "u5", Name: "Alex Kumar", Initials: "AK", Department: "DBA Team"},
			CreatedAt:       ts("2026-01-07T08:00:00Z"),
			UpdatedAt:       ts("2026-01-07T10:48:00Z"),
			EscalationLevel: 2,
			RetryCount:      0,
			Attachments:     []string{},
			Notes:           []string{"Scaling connection pool"},
		},
	}
}

// Escalations returns the fixed escalation reference records
func Escalations() []models.Escalation {
	return []models.Escalation{
		{
			ID: "ESC-001", ComplaintID: "CMP-001", ComplaintTitle: "Payment gateway timeout issues",
			Level: 3, Status: models.EscalationActive, RetryCount: 0, MaxRetries: 3,
			AssignedTo: "Department Head", Department: "Technical Support",
			CreatedAt: ts("2026-01-06T10:00:00Z"),
		},
		{
			ID: "ESC-002", ComplaintID: "CMP-005", ComplaintTitle: "API rate limiting errors",
			Level: 3, Status: models.EscalationActive, RetryCount: 2, MaxRetries: 3,
			AssignedTo: "VP Engineering", Department: "Engineering",
			CreatedAt: ts("2026-01-07T09:00:00Z"),
		},
		{
			ID: "ESC-003", ComplaintID: "CMP-002", ComplaintTitle: "User authentication failures",
			Level: 2, Status: models.EscalationPending, RetryCount: 1, MaxRetries: 3,
			AssignedTo: "Security Lead", Department: "Security Team",
			CreatedAt: ts("2026-01-07T06:00:00Z"),
		},
		{
			ID: "ESC-004", ComplaintID: "CMP-007", ComplaintTitle: "Webhook delivery failures",
			Level: 2, Status: models.EscalationFailed, RetryCount: 3, MaxRetries: 3,
			AssignedTo: "Integration Team Lead", Department: "Integrations",
			CreatedAt: ts("2026-01-05T14:00:00Z"),
			FailReason: "Endpoint unreachable after 3 retry attempts",
		},
		{
			ID: "ESC-005", ComplaintID: "CMP-006", ComplaintTitle: "Database connection pool exhaustion",
			Level: 2, Status: models.EscalationActive, RetryCount: 0, MaxRetries: 3,
			AssignedTo: "DBA Lead", Department: "DBA Team",
			CreatedAt: ts("2026-01-07T09:30:00Z"),
		},
	}
}

// PolicyRules returns the default severity policies. Levels are ordered by
// ascending level and ascending time threshold.
func PolicyRules() []models.PolicyRule {
	return []models.PolicyRule{
		{
			ID: "policy-critical", Severity: models.SeverityCritical, SLADuration: 4,
			EscalationLevels: []models.EscalationLevel{
				{Level: 1, Title: "Agent Assigned", Department: "L1 Support", TimeThreshold: 0},
				{Level: 2, Title: "Supervisor Review", Department: "L2 Support", TimeThreshold: 1},
				{Level: 3, Title: "Department Head", Department: "Management", TimeThreshold: 2},
				{Level: 4, Title: "Executive Review", Department: "C-Suite", TimeThreshold: 3},
			},
		},
		{
			ID: "policy-high", Severity: models.SeverityHigh, SLADuration: 12,
			EscalationLevels: []models.EscalationLevel{
				{Level: 1, Title: "Agent Assigned", Department: "L1 Support", TimeThreshold: 0},
				{Level: 2, Title: "Supervisor Review", Department: "L2 Support", TimeThreshold: 4},
				{Level: 3, Title: "Department Head", Department: "Management", TimeThreshold: 8},
			},
		},
		{
			ID: "policy-medium", Severity: models.SeverityMedium, SLADuration: 24,
			EscalationLevels: []models.EscalationLevel{
				{Level: 1, Title: "Agent Assigned", Department: "L1 Support", TimeThreshold: 0},
				{Level: 2, Title: "Supervisor Review", Department: "L2 Support", TimeThreshold: 12},
			},
		},
		{
			ID: "policy-low", Severity: models.SeverityLow, SLADuration: 48,
			EscalationLevels: []models.EscalationLevel{
				{Level: 1, Title: "Agent Assigned", Department: "L1 Support", TimeThreshold: 0},
			},
		},
	}
}
