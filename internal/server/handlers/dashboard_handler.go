package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/service/schedule"
	"github.com/pier41/crabhouse/internal/service/stock"
	"github.com/pier41/crabhouse/internal/service/weather"
)

// DashboardHandler composes the landing page payload: current stock,
// the recommended clock-in time and the local forecast.
type DashboardHandler struct {
	stockSvc   *stock.Service
	estimator  *schedule.Estimator
	weatherSvc *weather.Service
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardHandler constructs the dashboard HTTP adapter.
func NewDashboardHandler(stockSvc *stock.Service, estimator *schedule.Estimator, weatherSvc *weather.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{
		stockSvc:   stockSvc,
		estimator:  estimator,
		weatherSvc: weatherSvc,
		logger:     logger,
		now:        time.Now,
	}
}

// Dashboard returns everything the landing page renders in one call.
// Missing stock or weather come back as nulls, never as a 5xx.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	totals := h.stockSvc.GetStockTotals(ctx)
	estimate := h.estimator.EstimateFromTotals(totals, h.now())
	forecast := h.weatherSvc.GetForecast(ctx)

	staff, _ := c.Cookie(SessionCookieName)

	var totalDozens float64
	if totals != nil {
		totalDozens = totals.TotalDozens()
	}

	c.JSON(http.StatusOK, gin.H{
		"staff":        staff,
		"stock":        totals,
		"total_dozens": totalDozens,
		"estimate":     estimate,
		"weather":      forecast,
	})
}

// Stock returns the latest aggregated totals, or null when the ledger
// has no data rows yet.
func (h *DashboardHandler) Stock(c *gin.Context) {
	totals := h.stockSvc.GetStockTotals(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"stock": totals})
}

// Estimate returns the clock-in recommendation for the current moment.
func (h *DashboardHandler) Estimate(c *gin.Context) {
	totals := h.stockSvc.GetStockTotals(c.Request.Context())
	estimate := h.estimator.EstimateFromTotals(totals, h.now())
	c.JSON(http.StatusOK, estimate)
}
