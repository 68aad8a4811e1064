package service

import (
	"encoding/json"
	"fmt"
	"testing"

	"deadline/models"
	"deadline/repository"
	"deadline/seed"
	"deadline/storage"
)

// newTestComplaintService returns a service over a fresh in-memory store,
// without running Initialize, so tests can start from a genuinely empty list
func newTestComplaintService(t *testing.T) (*ComplaintService, *storage.Store) {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	policies := NewEscalationService(seed.Escalations(), seed.PolicyRules())
	svc := NewComplaintService(repository.NewComplaintRepository(store), policies)
	return svc, store
}

func draft(title string, sev models.Severity) models.ComplaintDraft {
	return models.ComplaintDraft{
		Title:       title,
		Description: "test complaint",
		Severity:    sev,
		Status:      models.StatusOpen,
		Category:    "Technical",
		Location:    models.Location{Lat: 40.7, Lng: -74.0, Address: "1 Test St", Region: "Northeast"},
		Assignee:    models.Assignee{ID: "u1", Name: "Sarah Chen", Initials: "SC", Department: "Technical Support"},
	}
}

func TestAddGeneratesSequentialIDs(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	first, err := svc.Add(draft("X", models.SeverityHigh))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first != "CMP-001" {
		t.Fatalf("expected CMP-001, got %s", first)
	}

	second, err := svc.Add(draft("Y", models.SeverityLow))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second != "CMP-002" {
		t.Fatalf("expected CMP-002, got %s", second)
	}

	// Zero-padding holds through double digits
	for i := 3; i <= 11; i++ {
		id, err := svc.Add(draft(fmt.Sprintf("c%d", i), models.SeverityMedium))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if want := fmt.Sprintf("CMP-%03d", i); id != want {
			t.Fatalf("expected %s, got %s", want, id)
		}
	}
}

func TestAddInitializesLifecycleFields(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	d := draft("X", models.SeverityHigh)
	d.Status = ""
	id, err := svc.Add(d)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	c, ok := svc.Get(id)
	if !ok {
		t.Fatal("complaint not found after add")
	}
	if c.Status != models.StatusOpen {
		t.Fatalf("expected status open, got %s", c.Status)
	}
	if c.EscalationLevel != 1 {
		t.Fatalf("expected escalation level 1, got %d", c.EscalationLevel)
	}
	if c.RetryCount != 0 {
		t.Fatalf("expected retry count 0, got %d", c.RetryCount)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Fatal("expected createdAt == updatedAt at creation")
	}
	// SLA snapshot comes from the high-severity policy
	if c.SLADuration != 12 {
		t.Fatalf("expected SLA duration 12h from policy, got %d", c.SLADuration)
	}
	if c.SLARemaining != "12h 00m" {
		t.Fatalf("expected full SLA remaining, got %q", c.SLARemaining)
	}
	if c.Attachments == nil || c.Notes == nil {
		t.Fatal("expected attachments and notes to be non-nil")
	}
}

func TestAddPrependsMostRecentFirst(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	svc.Add(draft("first", models.SeverityLow))
	svc.Add(draft("second", models.SeverityLow))

	list := svc.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 complaints, got %d", len(list))
	}
	if list[0].Title != "second" || list[1].Title != "first" {
		t.Fatalf("expected most-recent-first ordering, got %s, %s", list[0].Title, list[1].Title)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	id, _ := svc.Add(draft("X", models.SeverityLow))
	if _, ok := svc.Get("cmp-001"); !ok {
		t.Fatalf("expected lowercase lookup of %s to match", id)
	}
	if _, ok := svc.Get("CMP-001"); !ok {
		t.Fatal("expected exact lookup to match")
	}
	if _, ok := svc.Get("CMP-999"); ok {
		t.Fatal("expected unknown ID to miss")
	}
}

func TestUpdatePreservesIdentityAndBumpsUpdatedAt(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	id, _ := svc.Add(draft("X", models.SeverityHigh))
	before, _ := svc.Get(id)

	status := models.StatusInProgress
	if err := svc.Update(id, models.ComplaintUpdate{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, _ := svc.Get(id)
	if after.ID != before.ID {
		t.Fatal("update must not change ID")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatal("update must not change createdAt")
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("updatedAt must strictly increase on update")
	}
	if after.Status != models.StatusInProgress {
		t.Fatalf("expected merged status, got %s", after.Status)
	}
	if after.Title != before.Title {
		t.Fatal("unset fields must be left untouched")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	svc.Add(draft("X", models.SeverityLow))
	before, _ := json.Marshal(svc.List())

	status := models.StatusResolved
	if err := svc.Update("CMP-999", models.ComplaintUpdate{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, _ := json.Marshal(svc.List())
	if string(before) != string(after) {
		t.Fatal("update of unknown ID must leave the list unchanged")
	}
}

func TestUpdateClampsInvariantFields(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	id, _ := svc.Add(draft("X", models.SeverityLow))

	over := 150
	zeroLevel := 0
	svc.Update(id, models.ComplaintUpdate{SLAProgress: &over, EscalationLevel: &zeroLevel})

	c, _ := svc.Get(id)
	if c.SLAProgress != 100 {
		t.Fatalf("expected slaProgress clamped to 100, got %d", c.SLAProgress)
	}
	if c.EscalationLevel != 1 {
		t.Fatalf("escalation level must never drop below 1, got %d", c.EscalationLevel)
	}

	negative := -5
	svc.Update(id, models.ComplaintUpdate{SLAProgress: &negative})
	c, _ = svc.Get(id)
	if c.SLAProgress != 0 {
		t.Fatalf("expected slaProgress clamped to 0, got %d", c.SLAProgress)
	}
}

func TestAddNote(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	id, _ := svc.Add(draft("X", models.SeverityLow))
	if err := svc.AddNote(id, "triage done"); err != nil {
		t.Fatalf("add note: %v", err)
	}

	c, _ := svc.Get(id)
	if len(c.Notes) != 1 || c.Notes[0] != "triage done" {
		t.Fatalf("expected appended note, got %v", c.Notes)
	}

	// Unknown ID: silent no-op
	if err := svc.AddNote("CMP-999", "nope"); err != nil {
		t.Fatalf("add note unknown: %v", err)
	}
}

func TestInitializeSeedsWhenEmpty(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	if err := svc.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	list := svc.List()
	if len(list) != len(seed.Complaints()) {
		t.Fatalf("expected %d seeded complaints, got %d", len(seed.Complaints()), len(list))
	}
	if list[0].ID != "CMP-001" {
		t.Fatalf("unexpected first seed record: %s", list[0].ID)
	}
}

func TestInitializeFallsBackOnCorruptData(t *testing.T) {
	svc, store := newTestComplaintService(t)

	if err := store.Put("complaints", []byte("{definitely not json")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := svc.Initialize(); err != nil {
		t.Fatalf("initialize must not fail on corrupt data: %v", err)
	}
	if len(svc.List()) != len(seed.Complaints()) {
		t.Fatal("expected seed fallback after corrupt data")
	}
}

func TestIDGenerationAfterSeed(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	svc.Initialize() // seeds CMP-001..CMP-006
	id, err := svc.Add(draft("new", models.SeverityMedium))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id != "CMP-007" {
		t.Fatalf("expected CMP-007 after seed, got %s", id)
	}
}

func TestRoundTripPersistence(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	policies := NewEscalationService(nil, seed.PolicyRules())
	svc := NewComplaintService(repository.NewComplaintRepository(store), policies)

	id, _ := svc.Add(draft("X", models.SeverityCritical))
	status := models.StatusEscalated
	svc.Update(id, models.ComplaintUpdate{Status: &status})

	// A second store instance over the same backing must reproduce the list
	// field-for-field.
	reloaded := NewComplaintService(repository.NewComplaintRepository(store), policies)
	if err := reloaded.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	before, _ := json.Marshal(svc.List())
	after, _ := json.Marshal(reloaded.List())
	if string(before) != string(after) {
		t.Fatalf("round trip mismatch:\n%s\n%s", before, after)
	}
}

func TestSubscribeSeesWriteImmediately(t *testing.T) {
	svc, _ := newTestComplaintService(t)

	var seen int
	svc.Subscribe(func() {
		seen = len(svc.List())
	})

	svc.Add(draft("X", models.SeverityLow))
	if seen != 1 {
		t.Fatalf("listener must observe the write it was notified about, saw %d records", seen)
	}
}
