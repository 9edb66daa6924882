package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows     [][]interface{}
	err      error
	reads    int
	appended [][]interface{}
}

func (f *fakeRepo) AppendRow(_ context.Context, _ string, values []interface{}) error {
	f.appended = append(f.appended, values)
	return nil
}

func (f *fakeRepo) AppendRows(_ context.Context, _ string, rows [][]interface{}) error {
	f.appended = append(f.appended, rows...)
	return nil
}

func (f *fakeRepo) ReadRange(_ context.Context, _ string) ([][]interface{}, error) {
	f.reads++
	return f.rows, f.err
}

func headerRow() []interface{} {
	return []interface{}{"Date", "Time Closed", "Weather", "Condition", "Specials",
		"SM", "MD", "ML", "LG", "XL", "Jumbo", "Super",
		"Reg F", "LG F", "XL F", "Jumbo F", "Ungraded", "Bushels"}
}

func eodRow(date string, males, females []interface{}, ungraded, bushels interface{}) []interface{} {
	row := []interface{}{date, "8:30 PM", "82", "Clear", "None"}
	row = append(row, males...)
	row = append(row, females...)
	row = append(row, ungraded, bushels)
	return row
}

func TestGetStockTotals_EmptyLedger(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{name: "no rows at all", rows: nil},
		{name: "header only", rows: [][]interface{}{headerRow()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{rows: tc.rows}, nil)
			assert.Nil(t, svc.GetStockTotals(context.Background()))
		})
	}
}

func TestGetStockTotals_BackendFaultIsNoData(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("permission denied")}, nil)
	assert.Nil(t, svc.GetStockTotals(context.Background()))
}

func TestGetStockTotals_ReducesLatestRow(t *testing.T) {
	repo := &fakeRepo{rows: [][]interface{}{
		headerRow(),
		eodRow("08/29/2026",
			[]interface{}{"1", "1", "1", "1", "1", "1", "1"},
			[]interface{}{"1", "1", "1", "1"},
			"1", "1"),
		eodRow("08/30/2026",
			[]interface{}{"10", "20.5", "", "30", "15", "5", "2"},
			[]interface{}{"12", "8", "", "4"},
			"4", "12"),
	}}

	svc := NewService(repo, nil)
	totals := svc.GetStockTotals(context.Background())
	require.NotNil(t, totals)

	// Only the tail row counts; empty cells contribute zero.
	assert.InDelta(t, 82.5, totals.TotalMales, 0.001)
	assert.InDelta(t, 24, totals.TotalFemales, 0.001)
	assert.InDelta(t, 4, totals.UngradedBoxes, 0.001)
	assert.Equal(t, "12", totals.TotalBushels)
	assert.Equal(t, "08/30/2026", totals.ReportDate)
}

func TestGetStockTotals_CoercesMalformedCells(t *testing.T) {
	repo := &fakeRepo{rows: [][]interface{}{
		headerRow(),
		eodRow("08/30/2026",
			[]interface{}{"ten", "20", "n/a", "", "5", "-", "5"},
			[]interface{}{"abc", "", "3", "2"},
			"four", "0"),
	}}

	svc := NewService(repo, nil)
	totals := svc.GetStockTotals(context.Background())
	require.NotNil(t, totals)

	assert.InDelta(t, 30, totals.TotalMales, 0.001)
	assert.InDelta(t, 5, totals.TotalFemales, 0.001)
	assert.Zero(t, totals.UngradedBoxes)
	assert.GreaterOrEqual(t, totals.TotalMales, 0.0)
	assert.GreaterOrEqual(t, totals.TotalFemales, 0.0)
}

func TestGetStockTotals_ShortRowDefaults(t *testing.T) {
	// A row cut off before the ungraded and bushels columns.
	row := []interface{}{"08/30/2026", "8:30 PM", "80", "Clear", "None",
		"10", "10", "10", "10", "10", "10", "10"}
	repo := &fakeRepo{rows: [][]interface{}{headerRow(), row}}

	svc := NewService(repo, nil)
	totals := svc.GetStockTotals(context.Background())
	require.NotNil(t, totals)

	assert.InDelta(t, 70, totals.TotalMales, 0.001)
	assert.Zero(t, totals.TotalFemales)
	assert.Zero(t, totals.UngradedBoxes)
	assert.Equal(t, "0", totals.TotalBushels)
}

func TestGetStockTotals_Idempotent(t *testing.T) {
	repo := &fakeRepo{rows: [][]interface{}{
		headerRow(),
		eodRow("08/30/2026",
			[]interface{}{"10", "20", "30", "40", "50", "60", "70"},
			[]interface{}{"1", "2", "3", "4"},
			"5", "9"),
	}}

	svc := NewService(repo, nil)
	first := svc.GetStockTotals(context.Background())
	second := svc.GetStockTotals(context.Background())

	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.reads)
}
