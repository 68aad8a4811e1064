package service

import (
	"errors"
	"testing"

	"deadline/models"
	"deadline/seed"
)

func newTestEscalationService() *EscalationService {
	return NewEscalationService(seed.Escalations(), seed.PolicyRules())
}

func TestEscalationList(t *testing.T) {
	svc := newTestEscalationService()

	list := svc.List()
	if len(list) != 5 {
		t.Fatalf("expected 5 escalations, got %d", len(list))
	}
	if list[0].ID != "ESC-001" {
		t.Fatalf("unexpected first record: %s", list[0].ID)
	}
}

func TestEscalationListByComplaint(t *testing.T) {
	svc := newTestEscalationService()

	hits := svc.ListByComplaint("CMP-005")
	if len(hits) != 1 || hits[0].ID != "ESC-002" {
		t.Fatalf("unexpected result for CMP-005: %+v", hits)
	}
	if hits := svc.ListByComplaint("CMP-999"); len(hits) != 0 {
		t.Fatalf("expected no escalations for unknown complaint, got %d", len(hits))
	}
}

func TestEscalationListByStatus(t *testing.T) {
	svc := newTestEscalationService()

	if active := svc.ListByStatus(models.EscalationActive); len(active) != 3 {
		t.Fatalf("expected 3 active escalations, got %d", len(active))
	}
	failed := svc.ListByStatus(models.EscalationFailed)
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed escalation, got %d", len(failed))
	}
	if failed[0].FailReason == "" {
		t.Fatal("failed escalation must carry a fail reason")
	}
}

func TestPolicyForSeverity(t *testing.T) {
	svc := newTestEscalationService()

	cases := []struct {
		severity models.Severity
		duration int
		levels   int
	}{
		{models.SeverityCritical, 4, 4},
		{models.SeverityHigh, 12, 3},
		{models.SeverityMedium, 24, 2},
		{models.SeverityLow, 48, 1},
	}
	for _, tc := range cases {
		rule, ok := svc.PolicyForSeverity(tc.severity)
		if !ok {
			t.Fatalf("no policy for %s", tc.severity)
		}
		if rule.SLADuration != tc.duration {
			t.Fatalf("%s: expected %dh SLA, got %d", tc.severity, tc.duration, rule.SLADuration)
		}
		if len(rule.EscalationLevels) != tc.levels {
			t.Fatalf("%s: expected %d levels, got %d", tc.severity, tc.levels, len(rule.EscalationLevels))
		}
	}

	if _, ok := svc.PolicyForSeverity(models.Severity("unknown")); ok {
		t.Fatal("expected no policy for unknown severity")
	}
}

func TestUpdateSLADuration(t *testing.T) {
	svc := newTestEscalationService()

	if err := svc.UpdateSLADuration("policy-medium", 36); err != nil {
		t.Fatalf("update: %v", err)
	}
	rule, _ := svc.PolicyForSeverity(models.SeverityMedium)
	if rule.SLADuration != 36 {
		t.Fatalf("expected updated duration 36, got %d", rule.SLADuration)
	}
	// Escalation chain itself stays fixed
	if len(rule.EscalationLevels) != 2 {
		t.Fatalf("levels must not change on duration update, got %d", len(rule.EscalationLevels))
	}
}

func TestUpdateSLADurationValidation(t *testing.T) {
	svc := newTestEscalationService()

	if err := svc.UpdateSLADuration("policy-low", 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if err := svc.UpdateSLADuration("policy-nope", 10); !errors.Is(err, ErrPolicyNotFound) {
		t.Fatalf("expected ErrPolicyNotFound, got %v", err)
	}
}

func TestListReturnsCopies(t *testing.T) {
	svc := newTestEscalationService()

	svc.List()[0].ID = "mutated"
	if svc.List()[0].ID != "ESC-001" {
		t.Fatal("List must return a copy, not the backing slice")
	}

	svc.Policies()[0].SLADuration = 999
	if rule, _ := svc.PolicyForSeverity(models.SeverityCritical); rule.SLADuration != 4 {
		t.Fatal("Policies must return a copy, not the backing slice")
	}
}
