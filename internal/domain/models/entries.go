package models

// InvoiceEntry is one distributor delivery line logged from the
// invoices form. Counts are dozens.
type InvoiceEntry struct {
	Type        string  `json:"type" binding:"required"`
	Distributor string  `json:"distributor" binding:"required"`
	Ones        float64 `json:"ones"`
	Twos        float64 `json:"twos"`
	Females     float64 `json:"females"`
	ID          string  `json:"id"`
}

// EndOfDayReport is the closing report appended to the EoD ledger.
// Empty numeric form fields arrive as zero values, matching the
// ledger convention that blank cells mean zero.
type EndOfDayReport struct {
	TimeClosed       string  `json:"time_closed"`
	WeatherVal       float64 `json:"weather_val"`
	WeatherCondition string  `json:"weather_condition"`
	Specials         string  `json:"specials"`

	// Male size buckets, smallest to largest.
	MalesSmall       float64 `json:"males_small"`
	MalesMedium      float64 `json:"males_medium"`
	MalesMediumLarge float64 `json:"males_medium_large"`
	MalesLarge       float64 `json:"males_large"`
	MalesXL          float64 `json:"males_xl"`
	MalesJumbo       float64 `json:"males_jumbo"`
	MalesSuper       float64 `json:"males_super"`

	// Female size buckets.
	FemalesRegular float64 `json:"females_regular"`
	FemalesLarge   float64 `json:"females_large"`
	FemalesXL      float64 `json:"females_xl"`
	FemalesJumbo   float64 `json:"females_jumbo"`

	UngradedBoxes float64 `json:"ungraded_boxes"`
	Bushels       float64 `json:"bushels"`

	DozensSold  float64 `json:"dozens_sold"`
	BushelsSold float64 `json:"bushels_sold"`
	TotalSales  float64 `json:"total_sales"`
	CardSales   float64 `json:"card_sales"`
	CashSales   float64 `json:"cash_sales"`

	NumEmployees     int    `json:"num_employees"`
	NumLateEmployees int    `json:"num_late_employees"`
	LateReason       string `json:"late_reason"`
	NumCut           int    `json:"num_cut"`
	CutReason        string `json:"cut_reason"`
}

// WeeklyBreakdown is the per-worker grading breakdown logged on
// delivery days, split by origin.
type WeeklyBreakdown struct {
	WorkerName string `json:"worker_name" binding:"required"`

	Maryland  OriginBreakdown `json:"maryland"`
	Louisiana OriginBreakdown `json:"louisiana"`

	NumFemales     float64 `json:"num_females"`
	RegularFemales float64 `json:"regular_females"`
	LargeFemales   float64 `json:"large_females"`
	XLFemales      float64 `json:"xl_females"`
	JumboFemales   float64 `json:"jumbo_females"`
}

// OriginBreakdown groups one origin's graded counts.
type OriginBreakdown struct {
	Ones          float64 `json:"ones"`
	Twos          float64 `json:"twos"`
	Smalls        float64 `json:"smalls"`
	Mediums       float64 `json:"mediums"`
	Larges        float64 `json:"larges"`
	XLs           float64 `json:"xls"`
	Jumbos        float64 `json:"jumbos"`
	BushelsOfOnes float64 `json:"bushels_of_ones"`
}
