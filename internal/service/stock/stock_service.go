package stock

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/domain/models"
	repo "github.com/pier41/crabhouse/internal/repository/sheets"
)

// EoD ledger column layout. The entries service writes rows in this
// exact order; both sides must stay on this map so the read and write
// paths cannot drift.
const (
	EoDDataRange = "EoD_Data!A:R"

	colDate = 0

	colMalesFirst = 5  // small
	colMalesLast  = 11 // super

	colFemalesFirst = 12 // regular
	colFemalesLast  = 15 // jumbo

	colUngraded = 16
	colBushels  = 17
)

// Service reduces the tail row of the EoD ledger into stock totals.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService wires a new stock aggregation service.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// GetStockTotals reads the most recent end-of-day row and reduces it
// into totals. A ledger with no data rows, or a failed backend read,
// yields nil: absence of data is a displayable state for the caller,
// not an error to branch on.
func (s *Service) GetStockTotals(ctx context.Context) *models.StockTotals {
	rows, err := s.repo.ReadRange(ctx, EoDDataRange)
	if err != nil {
		s.logger.Warn("eod ledger read failed", zap.Error(err))
		return nil
	}

	// First row is the header.
	if len(rows) <= 1 {
		return nil
	}

	latest := rows[len(rows)-1]

	totals := &models.StockTotals{
		TotalMales:    sumCells(latest, colMalesFirst, colMalesLast),
		TotalFemales:  sumCells(latest, colFemalesFirst, colFemalesLast),
		TotalBushels:  cellString(latest, colBushels, "0"),
		UngradedBoxes: cellNumber(latest, colUngraded),
		ReportDate:    cellString(latest, colDate, ""),
	}

	s.logger.Debug("stock totals aggregated",
		zap.String("report_date", totals.ReportDate),
		zap.Float64("total_males", totals.TotalMales),
		zap.Float64("total_females", totals.TotalFemales))

	return totals
}

// sumCells adds the numeric values of the inclusive column span.
// Empty or non-numeric cells contribute zero.
func sumCells(row []interface{}, first, last int) float64 {
	var total float64
	for i := first; i <= last; i++ {
		total += cellNumber(row, i)
	}
	return total
}

func cellNumber(row []interface{}, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	value, err := strconv.ParseFloat(fmt.Sprint(row[idx]), 64)
	if err != nil {
		return 0
	}
	return value
}

func cellString(row []interface{}, idx int, fallback string) string {
	if idx >= len(row) {
		return fallback
	}
	str := fmt.Sprint(row[idx])
	if str == "" {
		return fallback
	}
	return str
}
