package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	repo "github.com/pier41/crabhouse/internal/repository/sheets"
	"github.com/pier41/crabhouse/internal/service/stock"
)

// ErrEmptyLedger indicates there is nothing to export.
var ErrEmptyLedger = errors.New("eod ledger is empty")

const exportSheetName = "EoD_Data"

// Service renders the EoD ledger into a downloadable workbook so the
// owner can pull the books without spreadsheet access.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService wires a new export service instance.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// ExportEoDLedger reads the full EoD range and returns it as .xlsx bytes.
func (s *Service) ExportEoDLedger(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ReadRange(ctx, stock.EoDDataRange)
	if err != nil {
		return nil, fmt.Errorf("read eod ledger: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLedger
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename export sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("resolve cell for row %d: %w", i+1, err)
		}
		if err := file.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("eod ledger exported", zap.Int("rows", len(rows)))
	return buf.Bytes(), nil
}
