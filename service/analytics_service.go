package service

import (
	"sort"

	"deadline/models"
)

// AnalyticsService computes the derived aggregates behind the dashboard,
// map and analytics views. It is a pure consumer of the complaint store:
// every call reads the current list, so results reflect writes immediately.
type AnalyticsService struct {
	complaints *ComplaintService
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(complaints *ComplaintService) *AnalyticsService {
	return &AnalyticsService{complaints: complaints}
}

// Summary returns the dashboard KPI rollup
func (s *AnalyticsService) Summary() models.AnalyticsSummary {
	list := s.complaints.List()

	summary := models.AnalyticsSummary{
		TotalComplaints: len(list),
		ByStatus:        make(map[models.ComplaintStatus]int),
		BySeverity:      make(map[models.Severity]int),
		ByCategory:      make(map[string]int),
	}

	progressTotal := 0
	for _, c := range list {
		summary.ByStatus[c.Status]++
		summary.BySeverity[c.Severity]++
		if c.Category != "" {
			summary.ByCategory[c.Category]++
		}
		progressTotal += c.SLAProgress

		switch c.Status {
		case models.StatusOpen, models.StatusInProgress:
			summary.ActiveCount++
		case models.StatusEscalated:
			summary.EscalatedCount++
		case models.StatusResolved:
			summary.ResolvedCount++
		case models.StatusFailed:
			summary.FailedCount++
		}
	}
	if len(list) > 0 {
		summary.AvgSLAProgress = float64(progressTotal) / float64(len(list))
	}
	return summary
}

// Hotspots aggregates complaints per region for the map view: count,
// dominant (highest) severity and mean SLA progress, positioned at the mean
// coordinates of the region's complaints.
func (s *AnalyticsService) Hotspots() []models.RegionHotspot {
	list := s.complaints.List()

	type bucket struct {
		count    int
		progress int
		latSum   float64
		lngSum   float64
		severity models.Severity
	}
	buckets := make(map[string]*bucket)

	for _, c := range list {
		region := c.Location.Region
		if region == "" {
			region = "Unknown"
		}
		b, ok := buckets[region]
		if !ok {
			b = &bucket{severity: c.Severity}
			buckets[region] = b
		}
		b.count++
		b.progress += c.SLAProgress
		b.latSum += c.Location.Lat
		b.lngSum += c.Location.Lng
		if severityRank(c.Severity) > severityRank(b.severity) {
			b.severity = c.Severity
		}
	}

	out := make([]models.RegionHotspot, 0, len(buckets))
	for region, b := range buckets {
		out = append(out, models.RegionHotspot{
			Region:           region,
			Lat:              b.latSum / float64(b.count),
			Lng:              b.lngSum / float64(b.count),
			ComplaintCount:   b.count,
			DominantSeverity: b.severity,
			AvgSLAProgress:   float64(b.progress) / float64(b.count),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ComplaintCount > out[j].ComplaintCount })
	return out
}

// OfficerPerformance rolls complaints up per assignee: resolved and pending
// counts plus mean SLA progress of their active workload
func (s *AnalyticsService) OfficerPerformance() []models.OfficerStats {
	list := s.complaints.List()

	type bucket struct {
		stats          models.OfficerStats
		activeCount    int
		activeProgress int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, c := range list {
		if c.Assignee.ID == "" {
			continue
		}
		b, ok := buckets[c.Assignee.ID]
		if !ok {
			b = &bucket{stats: models.OfficerStats{
				ID:         c.Assignee.ID,
				Name:       c.Assignee.Name,
				Department: c.Assignee.Department,
			}}
			buckets[c.Assignee.ID] = b
			order = append(order, c.Assignee.ID)
		}
		if c.Status == models.StatusResolved {
			b.stats.ResolvedCount++
		} else {
			b.stats.PendingCount++
			b.activeCount++
			b.activeProgress += c.SLAProgress
		}
	}

	out := make([]models.OfficerStats, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		if b.activeCount > 0 {
			b.stats.AvgSLAProgress = float64(b.activeProgress) / float64(b.activeCount)
		}
		b.stats.Performance = performanceBand(b.stats.AvgSLAProgress)
		out = append(out, b.stats)
	}
	return out
}

// severityRank orders severities low→critical for dominant-severity picks
func severityRank(sev models.Severity) int {
	switch sev {
	case models.SeverityCritical:
		return 4
	case models.SeverityHigh:
		return 3
	case models.SeverityMedium:
		return 2
	case models.SeverityLow:
		return 1
	}
	return 0
}

// performanceBand maps mean SLA progress of an officer's active workload to
// a display band; lower consumed SLA means more headroom
func performanceBand(avgProgress float64) string {
	switch {
	case avgProgress < 40:
		return "excellent"
	case avgProgress < 60:
		return "good"
	case avgProgress < 80:
		return "average"
	default:
		return "poor"
	}
}
