package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrevms/fii-radar/internal/domain"
)

// stubFeed returns fixed metrics so derivation is deterministic.
type stubFeed struct {
	metrics    AssetMetrics
	histAvgPVP float64
	tirNoise   float64
	cashFlows  []float64
}

func (f *stubFeed) AssetMetrics(string) AssetMetrics         { return f.metrics }
func (f *stubFeed) HistoricalAvgPVP(string, float64) float64 { return f.histAvgPVP }
func (f *stubFeed) TIRNoise(string) float64                  { return f.tirNoise }
func (f *stubFeed) CashFlows(string) []float64               { return f.cashFlows }

func TestDeriveFillsMissingMetrics(t *testing.T) {
	feed := &stubFeed{
		metrics: AssetMetrics{
			CapRate:       8.0,
			Vacancy:       5.0,
			Liquidity:     2_000_000,
			ManagementFee: 1.0,
			Volatility:    20.0,
		},
		histAvgPVP: 1.0,
		tirNoise:   2.0,
	}
	d := NewDeriver(feed, 4.5)

	rec := d.Derive(domain.FundRecord{
		Ticker:   "XPTO11",
		DYAnnual: 10.5,
		PVP:      0.9,
	})

	assert.Equal(t, 8.0, rec.CapRate)
	assert.Equal(t, 5.0, rec.Vacancy)
	assert.Equal(t, 20.0, rec.Volatility)

	// (10.5 - 4.5) / 20 = 0.3
	assert.InDelta(t, 0.3, rec.SharpeRatio, 1e-9)

	// (0.9 / 1.0 - 1) * 100 = -10
	assert.InDelta(t, -10.0, rec.PVPSpread, 1e-9)

	// No cash flows: dy + noise
	assert.InDelta(t, 12.5, rec.TIREstimate, 1e-9)
}

func TestDeriveKeepsSourceMetrics(t *testing.T) {
	feed := &stubFeed{
		metrics:    AssetMetrics{CapRate: 8.0, Vacancy: 5.0, Volatility: 20.0},
		histAvgPVP: 1.0,
	}
	d := NewDeriver(feed, 4.5)

	rec := d.Derive(domain.FundRecord{
		Ticker:    "XPTO11",
		DYAnnual:  10.0,
		PVP:       1.0,
		CapRate:   6.5,
		Liquidity: 900_000,
	})

	// Values the source supplied are not overwritten
	assert.Equal(t, 6.5, rec.CapRate)
	assert.Equal(t, 900_000.0, rec.Liquidity)

	// Values the source lacked come from the feed
	assert.Equal(t, 5.0, rec.Vacancy)
}

func TestDeriveTIRPrefersCashFlows(t *testing.T) {
	feed := &stubFeed{
		metrics:    AssetMetrics{Volatility: 20.0},
		histAvgPVP: 1.0,
		tirNoise:   5.0,
		cashFlows:  []float64{-100, 110},
	}
	d := NewDeriver(feed, 4.5)

	rec := d.Derive(domain.FundRecord{Ticker: "XPTO11", DYAnnual: 10.0, PVP: 1.0})

	// IRR of (-100, 110) is 10%, expressed in percent
	assert.InDelta(t, 10.0, rec.TIREstimate, 1e-3)
}

func TestDeriveZeroVolatilityGuard(t *testing.T) {
	feed := &stubFeed{histAvgPVP: 1.0}
	d := NewDeriver(feed, 4.5)

	rec := d.Derive(domain.FundRecord{Ticker: "XPTO11", DYAnnual: 10.0, PVP: 1.0})

	assert.Equal(t, 0.0, rec.SharpeRatio)
}
