package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/config"
	"github.com/pier41/crabhouse/internal/repository/mongodb"
	"github.com/pier41/crabhouse/internal/repository/sheets"
	"github.com/pier41/crabhouse/internal/scheduler"
	"github.com/pier41/crabhouse/internal/server/handlers"
	"github.com/pier41/crabhouse/internal/server/router"
	authsvc "github.com/pier41/crabhouse/internal/service/auth"
	entriessvc "github.com/pier41/crabhouse/internal/service/entries"
	exportsvc "github.com/pier41/crabhouse/internal/service/export"
	"github.com/pier41/crabhouse/internal/service/schedule"
	stocksvc "github.com/pier41/crabhouse/internal/service/stock"
	weathersvc "github.com/pier41/crabhouse/internal/service/weather"
	"github.com/pier41/crabhouse/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	settings, err := schedule.NewSettings(cfg.Schedule)
	if err != nil {
		baseLogger.Fatal("failed to resolve schedule settings", zap.Error(err))
	}

	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
	}

	stockService := stocksvc.NewService(sheetsRepo, baseLogger.Named("svc.stock"))
	estimator := schedule.NewEstimator(settings, baseLogger.Named("svc.schedule"))
	entriesService := entriessvc.NewService(sheetsRepo, settings.Location, baseLogger.Named("svc.entries"))
	authService := authsvc.NewService(cfg.Auth, baseLogger.Named("svc.auth"))
	weatherService := weathersvc.NewService(cfg.Weather, settings.Location, baseLogger.Named("svc.weather"))
	exportService := exportsvc.NewService(sheetsRepo, baseLogger.Named("svc.export"))

	secureCookies := os.Getenv("APP_ENV") == "production"

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(authService, secureCookies, baseLogger.Named("handlers.auth")),
		Dashboard: handlers.NewDashboardHandler(stockService, estimator, weatherService, baseLogger.Named("handlers.dashboard")),
		Entries:   handlers.NewEntryHandler(entriesService, baseLogger.Named("handlers.entries")),
		Export:    handlers.NewExportHandler(exportService, baseLogger.Named("handlers.export")),
	}, baseLogger.Named("router"))

	// The snapshot archive is optional: without a Mongo URI the
	// dashboard still works, we just skip the nightly job.
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()

		sched := scheduler.NewScheduler(cfg.Snapshot, settings.Location, stockService, estimator, mongoRepo, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Warn("mongodb uri missing, nightly snapshot archiving disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
