package models

// Sentinel recommended-time values. The estimator never fails on
// valid input; it degrades to these so the dashboard always has
// something displayable.
const (
	TimeClosed  = "Closed"
	TimeUnknown = "N/A"
)

// ScheduleEstimate is the recommended back-of-house clock-in time for
// the target business day, derived from a StockTotals snapshot and a
// reference instant.
type ScheduleEstimate struct {
	RecommendedTime string  `json:"recommended_time"`
	TargetDay       string  `json:"target_day"`
	IsNextDay       bool    `json:"is_next_day"`
	WorkloadMinutes float64 `json:"workload_minutes"`
}
