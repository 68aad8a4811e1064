package models

// AnalyticsSummary is the dashboard KPI rollup computed over the current
// complaint list. Purely derived; never stored.
type AnalyticsSummary struct {
	TotalComplaints int                     `json:"total_complaints"`
	ActiveCount     int                     `json:"active_count"`
	EscalatedCount  int                     `json:"escalated_count"`
	ResolvedCount   int                     `json:"resolved_count"`
	FailedCount     int                     `json:"failed_count"`
	ByStatus        map[ComplaintStatus]int `json:"by_status"`
	BySeverity      map[Severity]int        `json:"by_severity"`
	ByCategory      map[string]int          `json:"by_category"`
	AvgSLAProgress  float64                 `json:"avg_sla_progress"`
}

// RegionHotspot is the per-region aggregate behind the map view
type RegionHotspot struct {
	Region           string   `json:"region"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	ComplaintCount   int      `json:"complaint_count"`
	DominantSeverity Severity `json:"dominant_severity"`
	AvgSLAProgress   float64  `json:"avg_sla_progress"`
}

// OfficerStats is the per-assignee performance rollup
type OfficerStats struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	ResolvedCount  int     `json:"resolved_count"`
	PendingCount   int     `json:"pending_count"`
	AvgSLAProgress float64 `json:"avg_sla_progress"`
	Performance    string  `json:"performance"`
}
