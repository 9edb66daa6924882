package models

// StockTotals is the reduction of the most recent end-of-day ledger
// row. It is computed fresh on every read and never cached.
type StockTotals struct {
	TotalMales    float64 `json:"total_males"`
	TotalFemales  float64 `json:"total_females"`
	TotalBushels  string  `json:"total_bushels"`
	UngradedBoxes float64 `json:"ungraded_boxes"`
	ReportDate    string  `json:"report_date"`
}

// TotalDozens is the dozens-equivalent volume the estimator schedules
// against: graded males plus graded females.
func (s StockTotals) TotalDozens() float64 {
	return s.TotalMales + s.TotalFemales
}
