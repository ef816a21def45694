package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
)

func rawFund(ticker string, price, dy, pvp float64) statusinvest.RawFund {
	return statusinvest.RawFund{
		Ticker:       ticker,
		Segment:      "Logistics",
		Price:        &price,
		DY12M:        &dy,
		PVP:          &pvp,
		LastDividend: 0.8,
		Liquidity:    1_500_000,
	}
}

func TestNormalize(t *testing.T) {
	rec, err := Normalize(rawFund("hglg11", 160.0, 9.0, 0.95))
	require.NoError(t, err)

	assert.Equal(t, "HGLG11", rec.Ticker)
	assert.Equal(t, "Logistics", rec.Segment)
	assert.InDelta(t, 9.0/12, rec.DYMonthly, 1e-9)
	assert.InDelta(t, 160.0/0.95, rec.FairPrice, 1e-9)
	assert.True(t, rec.IsOpportunity)
}

func TestNormalizeOpportunityFlag(t *testing.T) {
	tests := []struct {
		name        string
		dy          float64
		pvp         float64
		opportunity bool
	}{
		{"high yield below book", 9.0, 0.9, true},
		{"yield at threshold", 8.0, 0.9, false},
		{"pvp at threshold", 9.0, 1.0, false},
		{"expensive fund", 5.0, 1.3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Normalize(rawFund("XPTO11", 100.0, tt.dy, tt.pvp))
			require.NoError(t, err)
			assert.Equal(t, tt.opportunity, rec.IsOpportunity)
		})
	}
}

func TestNormalizeZeroPVPFairPrice(t *testing.T) {
	rec, err := Normalize(rawFund("XPTO11", 80.0, 7.0, 0))
	require.NoError(t, err)

	// Unusable book value keeps the current price as fair price
	assert.Equal(t, 80.0, rec.FairPrice)
}

func TestNormalizeRejections(t *testing.T) {
	price, dy, pvp := 100.0, 9.0, 0.9

	tests := []struct {
		name string
		raw  statusinvest.RawFund
	}{
		{"empty ticker", statusinvest.RawFund{Segment: "Logistics", Price: &price, DY12M: &dy, PVP: &pvp}},
		{"blank ticker", statusinvest.RawFund{Ticker: "   ", Segment: "Logistics", Price: &price, DY12M: &dy, PVP: &pvp}},
		{"missing segment", statusinvest.RawFund{Ticker: "XPTO11", Price: &price, DY12M: &dy, PVP: &pvp}},
		{"missing price", statusinvest.RawFund{Ticker: "XPTO11", Segment: "Logistics", DY12M: &dy, PVP: &pvp}},
		{"missing dy", statusinvest.RawFund{Ticker: "XPTO11", Segment: "Logistics", Price: &price, PVP: &pvp}},
		{"missing pvp", statusinvest.RawFund{Ticker: "XPTO11", Segment: "Logistics", Price: &price, DY12M: &dy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	_, err := Normalize(rawFund("XPTO11", 0, 9.0, 0.9))
	assert.Error(t, err, "non-positive price")

	_, err = Normalize(rawFund("XPTO11", -10, 9.0, 0.9))
	assert.Error(t, err, "negative price")

	_, err = Normalize(rawFund("XPTO11", 100, -1, 0.9))
	assert.Error(t, err, "negative yield")
}
