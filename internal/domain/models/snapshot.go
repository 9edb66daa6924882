package models

import "time"

// DashboardSnapshot is the nightly archive record written by the
// scheduler: the closing stock totals plus the estimate for the next
// open day.
type DashboardSnapshot struct {
	CapturedAt      time.Time `bson:"captured_at" json:"captured_at"`
	ReportDate      string    `bson:"report_date" json:"report_date"`
	TotalMales      float64   `bson:"total_males" json:"total_males"`
	TotalFemales    float64   `bson:"total_females" json:"total_females"`
	TotalBushels    string    `bson:"total_bushels" json:"total_bushels"`
	UngradedBoxes   float64   `bson:"ungraded_boxes" json:"ungraded_boxes"`
	TargetDay       string    `bson:"target_day" json:"target_day"`
	RecommendedTime string    `bson:"recommended_time" json:"recommended_time"`
	WorkloadMinutes float64   `bson:"workload_minutes" json:"workload_minutes"`
}
