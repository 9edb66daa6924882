package entries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/domain/models"
	repo "github.com/pier41/crabhouse/internal/repository/sheets"
)

// ErrNoEntries indicates an invoice submission carried nothing to log.
var ErrNoEntries = errors.New("no invoice entries provided")

const (
	invoicesWriteRange  = "Invoices!A1"
	eodWriteRange       = "EoD_Data!A1"
	breakdownWriteRange = "Tues_Breakdown!A1"

	// Ledger rows are stamped with the business-local date, e.g. 08/31/2026.
	ledgerDateLayout = "01/02/2006"
)

// Service owns the three append-only write paths into the spreadsheet:
// distributor invoices, the end-of-day report and the weekly breakdown.
type Service struct {
	repo     repo.Repository
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the entry logging service. All date stamps use
// the supplied business timezone regardless of server locale.
func NewService(repository repo.Repository, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repository,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitInvoices appends one row per delivery entry to the Invoices
// tab. Entries without an ID get one assigned so individual lines stay
// traceable after they land in the sheet.
func (s *Service) SubmitInvoices(ctx context.Context, invoiceEntries []models.InvoiceEntry) error {
	if len(invoiceEntries) == 0 {
		return ErrNoEntries
	}

	date := s.now().In(s.location).Format(ledgerDateLayout)

	rows := make([][]interface{}, 0, len(invoiceEntries))
	for _, entry := range invoiceEntries {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		rows = append(rows, []interface{}{
			date,
			entry.Type,
			entry.Distributor,
			entry.Ones,
			entry.Twos,
			entry.Females,
			entry.ID,
		})
	}

	if err := s.repo.AppendRows(ctx, invoicesWriteRange, rows); err != nil {
		return err
	}

	s.logger.Info("invoice entries logged", zap.Int("count", len(rows)), zap.String("date", date))
	return nil
}

// SubmitEndOfDay appends the closing report to the EoD ledger. The
// column order here is the layout the stock aggregator reads back, so
// any change must land on both sides.
func (s *Service) SubmitEndOfDay(ctx context.Context, report models.EndOfDayReport) error {
	date := s.now().In(s.location).Format(ledgerDateLayout)

	row := []interface{}{
		date,
		textOrDefault(report.TimeClosed, "N/A"),
		report.WeatherVal,
		textOrDefault(report.WeatherCondition, "N/A"),
		textOrDefault(report.Specials, "None"),

		report.MalesSmall,
		report.MalesMedium,
		report.MalesMediumLarge,
		report.MalesLarge,
		report.MalesXL,
		report.MalesJumbo,
		report.MalesSuper,

		report.FemalesRegular,
		report.FemalesLarge,
		report.FemalesXL,
		report.FemalesJumbo,

		report.UngradedBoxes,
		report.Bushels,

		report.DozensSold,
		report.BushelsSold,
		report.TotalSales,
		report.CardSales,
		report.CashSales,

		report.NumEmployees,
		report.NumLateEmployees,
		textOrDefault(report.LateReason, "N/A"),
		report.NumCut,
		textOrDefault(report.CutReason, "N/A"),
	}

	if err := s.repo.AppendRow(ctx, eodWriteRange, row); err != nil {
		return err
	}

	s.logger.Info("end of day report logged", zap.String("date", date))
	return nil
}

// SubmitWeeklyBreakdown appends the per-worker grading breakdown.
func (s *Service) SubmitWeeklyBreakdown(ctx context.Context, breakdown models.WeeklyBreakdown) error {
	date := s.now().In(s.location).Format(ledgerDateLayout)

	row := []interface{}{
		date,
		breakdown.WorkerName,
	}
	row = append(row, originCells(breakdown.Maryland)...)
	row = append(row, originCells(breakdown.Louisiana)...)
	row = append(row,
		breakdown.NumFemales,
		breakdown.RegularFemales,
		breakdown.LargeFemales,
		breakdown.XLFemales,
		breakdown.JumboFemales,
	)

	if err := s.repo.AppendRow(ctx, breakdownWriteRange, row); err != nil {
		return err
	}

	s.logger.Info("weekly breakdown logged", zap.String("worker", breakdown.WorkerName), zap.String("date", date))
	return nil
}

func originCells(origin models.OriginBreakdown) []interface{} {
	return []interface{}{
		origin.Ones,
		origin.Twos,
		origin.Smalls,
		origin.Mediums,
		origin.Larges,
		origin.XLs,
		origin.Jumbos,
		origin.BushelsOfOnes,
	}
}

func textOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
