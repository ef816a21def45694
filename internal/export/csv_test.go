package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/internal/modules/portfolio"
)

func TestWriteUniverseCSV(t *testing.T) {
	u := domain.NewUniverse([]domain.FundRecord{
		{Ticker: "HGLG11", Segment: "Logistics", Price: 160, DYAnnual: 9, PVP: 0.95, FairPrice: 168.42, IsOpportunity: true},
		{Ticker: "KNRI11", Segment: "Corporate", Price: 130, DYAnnual: 8.4, PVP: 0.88},
	}, "test", time.Now())

	var buf bytes.Buffer
	require.NoError(t, WriteUniverseCSV(&buf, u))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	header := rows[0]
	assert.Equal(t, "ticker", header[0])
	assert.Equal(t, "segment", header[1])
	assert.Contains(t, header, "fair_price")
	assert.Contains(t, header, "is_opportunity")
	assert.Contains(t, header, "pvp_spread")

	assert.Equal(t, "HGLG11", rows[1][0])
	assert.Equal(t, "160", rows[1][2])
	assert.Equal(t, "true", rows[1][7])
	assert.Equal(t, "KNRI11", rows[2][0])

	for _, row := range rows {
		assert.Len(t, row, len(header))
	}
}

func TestWritePositionsCSV(t *testing.T) {
	positions := []portfolio.Position{
		{Ticker: "HGLG11", Quantity: 10, AvgPrice: 150, CurrentPrice: 160, Segment: "Logistics", DYAnnual: 9, DYMonthly: 0.75, PVP: 0.95},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePositionsCSV(&buf, positions))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"ticker", "quantity", "avg_price", "current_price", "segment", "dy_annual", "dy_monthly", "pvp"}, rows[0])
	assert.Equal(t, "HGLG11", rows[1][0])
	assert.Equal(t, "10", rows[1][1])
}

func TestWritePositionsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePositionsCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
