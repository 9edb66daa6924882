package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/config"
	"github.com/pier41/crabhouse/internal/domain/models"
	"github.com/pier41/crabhouse/internal/repository/mongodb"
	"github.com/pier41/crabhouse/internal/service/schedule"
	"github.com/pier41/crabhouse/internal/service/stock"
)

// Scheduler runs the nightly snapshot job: after close it captures the
// day's stock totals plus the next open day's estimate and archives
// them for later review.
type Scheduler struct {
	cron      *cron.Cron
	stockSvc  *stock.Service
	estimator *schedule.Estimator
	archive   mongodb.Repository
	cfg       config.SnapshotConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// business timezone so "after close" means shop-local time.
func NewScheduler(cfg config.SnapshotConfig, location *time.Location, stockSvc *stock.Service, estimator *schedule.Estimator, archive mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.Local
	}

	c := cron.New(cron.WithLocation(location))

	return &Scheduler{
		cron:      c,
		stockSvc:  stockSvc,
		estimator: estimator,
		archive:   archive,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.captureSnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) captureSnapshot() {
	s.logger.Info("capturing dashboard snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	totals := s.stockSvc.GetStockTotals(ctx)
	if totals == nil {
		s.logger.Warn("no stock totals available, skipping snapshot")
		return
	}

	estimate := s.estimator.EstimateFromTotals(totals, now)

	snapshot := models.DashboardSnapshot{
		CapturedAt:      now,
		ReportDate:      totals.ReportDate,
		TotalMales:      totals.TotalMales,
		TotalFemales:    totals.TotalFemales,
		TotalBushels:    totals.TotalBushels,
		UngradedBoxes:   totals.UngradedBoxes,
		TargetDay:       estimate.TargetDay,
		RecommendedTime: estimate.RecommendedTime,
		WorkloadMinutes: estimate.WorkloadMinutes,
	}

	if err := s.archive.SaveDashboardSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to archive snapshot", zap.Error(err))
		return
	}

	s.logger.Info("dashboard snapshot archived",
		zap.String("report_date", snapshot.ReportDate),
		zap.String("recommended_time", snapshot.RecommendedTime))
}
