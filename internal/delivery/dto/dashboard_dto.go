package dto

// DashboardStatsResponse carries the request counts shown on the dashboard.
type DashboardStatsResponse struct {
	PendingCount  int64 `json:"pending_count"`
	ApprovedCount int64 `json:"approved_count"`
	DeniedCount   int64 `json:"denied_count"`
}
