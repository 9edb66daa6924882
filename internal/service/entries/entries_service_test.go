package entries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pier41/crabhouse/internal/domain/models"
)

type captureRepo struct {
	lastRange string
	rows      [][]interface{}
}

func (c *captureRepo) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	return c.AppendRows(context.Background(), sheetRange, [][]interface{}{values})
}

func (c *captureRepo) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	c.lastRange = sheetRange
	c.rows = append(c.rows, rows...)
	return nil
}

func (c *captureRepo) ReadRange(_ context.Context, _ string) ([][]interface{}, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *captureRepo) {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	repo := &captureRepo{}
	svc := NewService(repo, loc, nil)
	// Pin the clock: 11 PM Eastern on Aug 30 is already Aug 31 in UTC,
	// the stamp must still read 08/30.
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 3, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestSubmitInvoices_StampsAndAssignsIDs(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.SubmitInvoices(context.Background(), []models.InvoiceEntry{
		{Type: "#1 Males", Distributor: "Chesapeake Co", Ones: 40, Twos: 12, Females: 0},
		{Type: "Mixed", Distributor: "Gulf South", Ones: 10, Twos: 5, Females: 20, ID: "inv-77"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Invoices!A1", repo.lastRange)
	require.Len(t, repo.rows, 2)

	first := repo.rows[0]
	require.Len(t, first, 7)
	assert.Equal(t, "08/30/2026", first[0])
	assert.Equal(t, "#1 Males", first[1])
	assert.Equal(t, "Chesapeake Co", first[2])
	assert.NotEmpty(t, first[6], "missing IDs must be assigned")

	assert.Equal(t, "inv-77", repo.rows[1][6])
}

func TestSubmitInvoices_RejectsEmptyBatch(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SubmitInvoices(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestSubmitEndOfDay_RowLayoutMatchesLedger(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.SubmitEndOfDay(context.Background(), models.EndOfDayReport{
		TimeClosed:       "8:15 PM",
		WeatherVal:       84,
		WeatherCondition: "Clear",
		MalesSmall:       10, MalesMedium: 20, MalesMediumLarge: 30,
		MalesLarge: 40, MalesXL: 50, MalesJumbo: 60, MalesSuper: 70,
		FemalesRegular: 1, FemalesLarge: 2, FemalesXL: 3, FemalesJumbo: 4,
		UngradedBoxes: 6,
		Bushels:       14,
		DozensSold:    120,
		TotalSales:    3400.50,
		NumEmployees:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, "EoD_Data!A1", repo.lastRange)
	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	require.Len(t, row, 28)

	assert.Equal(t, "08/30/2026", row[0])
	assert.Equal(t, "8:15 PM", row[1])

	// Bucket columns sit exactly where the aggregator reads them.
	assert.Equal(t, 10.0, row[5])
	assert.Equal(t, 70.0, row[11])
	assert.Equal(t, 1.0, row[12])
	assert.Equal(t, 4.0, row[15])
	assert.Equal(t, 6.0, row[16])
	assert.Equal(t, 14.0, row[17])

	// Blank free-text fields get their ledger placeholders.
	assert.Equal(t, "None", row[4])
	assert.Equal(t, "N/A", row[25])
	assert.Equal(t, "N/A", row[27])
}

func TestSubmitWeeklyBreakdown_RowLayout(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.SubmitWeeklyBreakdown(context.Background(), models.WeeklyBreakdown{
		WorkerName: "Dee",
		Maryland:   models.OriginBreakdown{Ones: 8, Twos: 4, Jumbos: 2, BushelsOfOnes: 3},
		Louisiana:  models.OriginBreakdown{Ones: 12, Smalls: 6},
		NumFemales: 18, RegularFemales: 10, LargeFemales: 5, XLFemales: 2, JumboFemales: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tues_Breakdown!A1", repo.lastRange)
	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	require.Len(t, row, 23)

	assert.Equal(t, "08/30/2026", row[0])
	assert.Equal(t, "Dee", row[1])
	assert.Equal(t, 8.0, row[2])   // Maryland ones
	assert.Equal(t, 3.0, row[9])   // Maryland bushels of ones
	assert.Equal(t, 12.0, row[10]) // Louisiana ones
	assert.Equal(t, 18.0, row[18]) // total females
	assert.Equal(t, 1.0, row[22])  // jumbo females
}
