package schedule

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	appconfig "github.com/pier41/crabhouse/internal/config"
	"github.com/pier41/crabhouse/internal/domain/models"
)

// Settings are the estimator's resolved business constants. The day
// tables are lookups rather than branches so the business-rule
// surface stays auditable in one place.
type Settings struct {
	Location *time.Location

	// VolumeRateMinutes of prep per VolumeRateDozens of graded stock.
	VolumeRateMinutes float64
	VolumeRateDozens  float64

	// Minutes of prep per ungraded box.
	UngradedRateMinutes float64

	// From this local hour on, estimates target the next calendar day.
	NextDayRolloverHour int

	// Latest acceptable clock-in hour per open day. A day missing
	// from this table and not marked closed resolves to N/A.
	LatestHours map[time.Weekday]int
	ClosedDays  map[time.Weekday]bool
}

// NewSettings resolves config into estimator settings. The shop is
// dark on Monday and Tuesday; Wednesday through Friday share the
// weekday baseline and the weekend days share the earlier one.
func NewSettings(cfg appconfig.ScheduleConfig) (Settings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Settings{}, fmt.Errorf("load business timezone %s: %w", cfg.Timezone, err)
	}

	return Settings{
		Location:            loc,
		VolumeRateMinutes:   cfg.VolumeRateMinutes,
		VolumeRateDozens:    cfg.VolumeRateDozens,
		UngradedRateMinutes: cfg.UngradedRateMinutes,
		NextDayRolloverHour: cfg.NextDayRolloverHour,
		LatestHours: map[time.Weekday]int{
			time.Wednesday: cfg.WeekdayLatestHour,
			time.Thursday:  cfg.WeekdayLatestHour,
			time.Friday:    cfg.WeekdayLatestHour,
			time.Saturday:  cfg.WeekendLatestHour,
			time.Sunday:    cfg.WeekendLatestHour,
		},
		ClosedDays: map[time.Weekday]bool{
			time.Monday:  true,
			time.Tuesday: true,
		},
	}, nil
}

// Estimator converts stock totals and a reference instant into a
// recommended back-of-house clock-in time. It holds no state beyond
// its settings; every call is a pure computation over its inputs.
type Estimator struct {
	settings Settings
	logger   *zap.Logger
}

// NewEstimator wires a new estimator instance.
func NewEstimator(settings Settings, logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{settings: settings, logger: logger}
}

// EstimateFromTotals runs Estimate against an aggregated snapshot.
// A nil snapshot means no inventory on hand, which schedules the
// baseline latest time.
func (e *Estimator) EstimateFromTotals(totals *models.StockTotals, ref time.Time) models.ScheduleEstimate {
	if totals == nil {
		return e.Estimate(0, 0, ref)
	}
	return e.Estimate(totals.TotalDozens(), totals.UngradedBoxes, ref)
}

// Estimate schedules backward from the target day's latest acceptable
// hour: the more dozens and ungraded boxes there are to prep, the
// earlier the crew must start.
func (e *Estimator) Estimate(totalDozens, ungradedBoxes float64, ref time.Time) models.ScheduleEstimate {
	local := ref.In(e.settings.Location)

	// Past the rollover hour the crew is scheduling for tomorrow.
	isNextDay := local.Hour() >= e.settings.NextDayRolloverHour
	target := local
	if isNextDay {
		target = local.AddDate(0, 0, 1)
	}

	day := target.Weekday()
	estimate := models.ScheduleEstimate{
		TargetDay: day.String(),
		IsNextDay: isNextDay,
	}

	if e.settings.ClosedDays[day] {
		estimate.RecommendedTime = models.TimeClosed
		return estimate
	}

	baselineHour, ok := e.settings.LatestHours[day]
	if !ok {
		// Neither closed nor mapped: the day table is incomplete.
		e.logger.Warn("day missing from baseline hour table", zap.String("day", day.String()))
		estimate.RecommendedTime = models.TimeUnknown
		return estimate
	}

	workload := (totalDozens/e.settings.VolumeRateDozens)*e.settings.VolumeRateMinutes +
		ungradedBoxes*e.settings.UngradedRateMinutes
	estimate.WorkloadMinutes = workload

	minuteOfDay := float64(baselineHour*60) - workload
	if minuteOfDay < 0 {
		minuteOfDay = 0
	}

	// Nearest 5 minute step, half rounding up. The carry into the
	// next hour falls out of the integer division below.
	rounded := int(5 * math.Floor(minuteOfDay/5+0.5))

	estimate.RecommendedTime = formatClock(rounded/60, rounded%60)
	return estimate
}

func formatClock(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}
