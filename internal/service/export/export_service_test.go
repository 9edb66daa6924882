package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeRepo struct {
	rows [][]interface{}
	err  error
}

func (f *fakeRepo) AppendRow(_ context.Context, _ string, _ []interface{}) error { return nil }
func (f *fakeRepo) AppendRows(_ context.Context, _ string, _ [][]interface{}) error {
	return nil
}
func (f *fakeRepo) ReadRange(_ context.Context, _ string) ([][]interface{}, error) {
	return f.rows, f.err
}

func TestExportEoDLedger(t *testing.T) {
	svc := NewService(&fakeRepo{rows: [][]interface{}{
		{"Date", "Time Closed"},
		{"08/29/2026", "8:00 PM"},
		{"08/30/2026", "8:30 PM"},
	}}, nil)

	data, err := svc.ExportEoDLedger(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// The workbook must round-trip with the ledger contents intact.
	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := file.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "08/30/2026", rows[2][0])
}

func TestExportEoDLedger_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	_, err := svc.ExportEoDLedger(context.Background())
	assert.ErrorIs(t, err, ErrEmptyLedger)
}

func TestExportEoDLedger_ReadFault(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("quota exceeded")}, nil)
	_, err := svc.ExportEoDLedger(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyLedger)
}
