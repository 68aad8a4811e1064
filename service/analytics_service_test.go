package service

import (
	"math"
	"testing"

	"deadline/models"
	"deadline/repository"
	"deadline/seed"
	"deadline/storage"
)

// newSeededAnalyticsService builds the analytics service over the seeded
// complaint list, so expectations below are pinned to the sample dataset
func newSeededAnalyticsService(t *testing.T) (*AnalyticsService, *ComplaintService) {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	policies := NewEscalationService(seed.Escalations(), seed.PolicyRules())
	complaints := NewComplaintService(repository.NewComplaintRepository(store), policies)
	if err := complaints.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return NewAnalyticsService(complaints), complaints
}

func TestSummary(t *testing.T) {
	svc, _ := newSeededAnalyticsService(t)

	summary := svc.Summary()
	if summary.TotalComplaints != 6 {
		t.Fatalf("expected 6 complaints, got %d", summary.TotalComplaints)
	}
	if summary.ActiveCount != 4 {
		t.Fatalf("expected 4 active (open + in-progress), got %d", summary.ActiveCount)
	}
	if summary.EscalatedCount != 2 {
		t.Fatalf("expected 2 escalated, got %d", summary.EscalatedCount)
	}
	if summary.ResolvedCount != 0 || summary.FailedCount != 0 {
		t.Fatalf("expected no resolved or failed in seed, got %d/%d", summary.ResolvedCount, summary.FailedCount)
	}
	if summary.BySeverity[models.SeverityCritical] != 2 || summary.BySeverity[models.SeverityHigh] != 2 {
		t.Fatalf("unexpected severity rollup: %v", summary.BySeverity)
	}
	if summary.ByCategory["Technical"] != 1 {
		t.Fatalf("unexpected category rollup: %v", summary.ByCategory)
	}
	// (85+45+20+60+92+70) / 6
	if math.Abs(summary.AvgSLAProgress-62.0) > 1e-9 {
		t.Fatalf("expected avg SLA progress 62.0, got %f", summary.AvgSLAProgress)
	}
}

func TestSummaryEmptyStore(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	policies := NewEscalationService(nil, seed.PolicyRules())
	complaints := NewComplaintService(repository.NewComplaintRepository(store), policies)
	svc := NewAnalyticsService(complaints)

	summary := svc.Summary()
	if summary.TotalComplaints != 0 || summary.AvgSLAProgress != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestHotspots(t *testing.T) {
	svc, _ := newSeededAnalyticsService(t)

	hotspots := svc.Hotspots()
	if len(hotspots) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(hotspots))
	}

	// West holds three complaints and sorts first
	west := hotspots[0]
	if west.Region != "West" || west.ComplaintCount != 3 {
		t.Fatalf("expected West with 3 complaints first, got %s (%d)", west.Region, west.ComplaintCount)
	}
	if west.DominantSeverity != models.SeverityCritical {
		t.Fatalf("expected critical dominant severity in West, got %s", west.DominantSeverity)
	}
	// (45+92+70) / 3
	if math.Abs(west.AvgSLAProgress-69.0) > 1e-9 {
		t.Fatalf("expected West avg progress 69.0, got %f", west.AvgSLAProgress)
	}
	wantLat := (34.0522 + 47.6062 + 37.7749) / 3
	if math.Abs(west.Lat-wantLat) > 1e-9 {
		t.Fatalf("expected mean lat %f, got %f", wantLat, west.Lat)
	}

	for _, h := range hotspots[1:] {
		if h.ComplaintCount != 1 {
			t.Fatalf("expected single-complaint region, got %s (%d)", h.Region, h.ComplaintCount)
		}
	}
}

func TestHotspotsSeesNewComplaints(t *testing.T) {
	svc, complaints := newSeededAnalyticsService(t)

	d := draft("new in midwest", models.SeverityLow)
	d.Location.Region = "Midwest"
	if _, err := complaints.Add(d); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, h := range svc.Hotspots() {
		if h.Region == "Midwest" {
			if h.ComplaintCount != 2 {
				t.Fatalf("expected Midwest count 2 after add, got %d", h.ComplaintCount)
			}
			return
		}
	}
	t.Fatal("Midwest region missing from hotspots")
}

func TestOfficerPerformance(t *testing.T) {
	svc, _ := newSeededAnalyticsService(t)

	stats := svc.OfficerPerformance()
	if len(stats) != 5 {
		t.Fatalf("expected 5 officers, got %d", len(stats))
	}
	// Insertion order follows the complaint list
	if stats[0].ID != "u1" || stats[1].ID != "u2" {
		t.Fatalf("unexpected officer order: %s, %s", stats[0].ID, stats[1].ID)
	}

	u1 := stats[0]
	if u1.Name != "Sarah Chen" || u1.PendingCount != 2 || u1.ResolvedCount != 0 {
		t.Fatalf("unexpected u1 stats: %+v", u1)
	}
	// (85+92) / 2
	if math.Abs(u1.AvgSLAProgress-88.5) > 1e-9 {
		t.Fatalf("expected u1 avg progress 88.5, got %f", u1.AvgSLAProgress)
	}
	if u1.Performance != "poor" {
		t.Fatalf("expected poor band at 88.5, got %s", u1.Performance)
	}
}

func TestOfficerPerformanceCountsResolved(t *testing.T) {
	svc, complaints := newSeededAnalyticsService(t)

	status := models.StatusResolved
	if err := complaints.Update("CMP-001", models.ComplaintUpdate{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	for _, s := range svc.OfficerPerformance() {
		if s.ID != "u1" {
			continue
		}
		if s.ResolvedCount != 1 || s.PendingCount != 1 {
			t.Fatalf("expected u1 resolved=1 pending=1, got %+v", s)
		}
		// Only the remaining active complaint (progress 92) counts
		if math.Abs(s.AvgSLAProgress-92.0) > 1e-9 {
			t.Fatalf("expected active-only avg 92.0, got %f", s.AvgSLAProgress)
		}
		return
	}
	t.Fatal("u1 missing from officer stats")
}

func TestPerformanceBands(t *testing.T) {
	cases := []struct {
		progress float64
		want     string
	}{
		{0, "excellent"},
		{39.9, "excellent"},
		{40, "good"},
		{59.9, "good"},
		{60, "average"},
		{79.9, "average"},
		{80, "poor"},
		{100, "poor"},
	}
	for _, tc := range cases {
		if got := performanceBand(tc.progress); got != tc.want {
			t.Fatalf("band(%f): expected %s, got %s", tc.progress, tc.want, got)
		}
	}
}
