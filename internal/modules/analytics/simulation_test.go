package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/domain"
)

func TestSimulate(t *testing.T) {
	rec := domain.FundRecord{
		Ticker:       "HGLG11",
		Price:        160,
		DYAnnual:     9.0,
		DYMonthly:    0.75,
		LastDividend: 0.70,
	}

	sim := Simulate(rec, 16_000)

	assert.InDelta(t, 100.0, sim.Shares, 1e-9)
	assert.InDelta(t, 16_000*0.75/100, sim.MonthlyIncome, 1e-9)
	assert.InDelta(t, 16_000*9.0/100, sim.AnnualIncome, 1e-9)

	// Gordon at the default 10% discount, 3% growth: 0.7*12/0.07 = 120
	assert.InDelta(t, 120.0, sim.GordonPrice, 1e-9)
}

func TestSimulateGuards(t *testing.T) {
	rec := domain.FundRecord{Ticker: "HGLG11", Price: 160, DYAnnual: 9.0, DYMonthly: 0.75}

	zeroAmount := Simulate(rec, 0)
	assert.Equal(t, 0.0, zeroAmount.Shares)
	assert.Equal(t, 0.0, zeroAmount.MonthlyIncome)

	zeroPrice := Simulate(domain.FundRecord{Ticker: "X", DYAnnual: 9.0}, 10_000)
	assert.Equal(t, 0.0, zeroPrice.Shares)
}

func TestProject10Years(t *testing.T) {
	rec := domain.FundRecord{Ticker: "HGLG11", DYAnnual: 9.0}

	years := Project10Years(rec)
	require.Len(t, years, 10)

	// 10,000 at 9% a year, no compounding
	assert.Equal(t, 1, years[0].Year)
	assert.InDelta(t, 900.0, years[0].CumulativeDividends, 1e-9)
	assert.InDelta(t, 9.0, years[0].ReturnPct, 1e-9)

	assert.Equal(t, 10, years[9].Year)
	assert.InDelta(t, 9000.0, years[9].CumulativeDividends, 1e-9)
	assert.InDelta(t, 90.0, years[9].ReturnPct, 1e-9)

	// Monotonic accumulation
	for i := 1; i < len(years); i++ {
		assert.Greater(t, years[i].CumulativeDividends, years[i-1].CumulativeDividends)
	}
}
