package analytics

import (
	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// Default Gordon model assumptions until per-fund estimates exist.
const (
	defaultGrowthRate   = 3.0  // percent per year
	defaultDiscountRate = 10.0 // percent per year
)

// projectionInitialInvestment is the reference amount for the 10-year view.
const projectionInitialInvestment = 10_000.0

// Simulation is the outcome of investing a fixed amount in one fund.
type Simulation struct {
	Ticker        string  `json:"ticker"`
	Amount        float64 `json:"amount"`
	Shares        float64 `json:"shares"`
	MonthlyIncome float64 `json:"monthly_income"`
	AnnualIncome  float64 `json:"annual_income"`
	DYMonthly     float64 `json:"dy_monthly"`
	DYAnnual      float64 `json:"dy_annual"`
	GordonPrice   float64 `json:"gordon_price"`
}

// Simulate computes the income an investment of amount would produce at the
// fund's current yield. A non-positive amount or price yields a zero result.
func Simulate(rec domain.FundRecord, amount float64) Simulation {
	sim := Simulation{
		Ticker:    rec.Ticker,
		Amount:    amount,
		DYMonthly: rec.DYMonthly,
		DYAnnual:  rec.DYAnnual,
		GordonPrice: formulas.GordonFairPrice(
			rec.LastDividend, defaultGrowthRate, defaultDiscountRate),
	}
	if amount <= 0 || rec.Price <= 0 {
		return sim
	}

	sim.Shares = amount / rec.Price
	sim.MonthlyIncome = amount * rec.DYMonthly / 100
	sim.AnnualIncome = amount * rec.DYAnnual / 100

	return sim
}

// ProjectionYear is one row of the 10-year dividend projection.
type ProjectionYear struct {
	Year                int     `json:"year"`
	CumulativeDividends float64 `json:"cumulative_dividends"`
	ReturnPct           float64 `json:"return_pct"`
}

// Project10Years projects cumulative dividends over ten years for a fixed
// 10,000 investment at the fund's current annual yield, without compounding.
func Project10Years(rec domain.FundRecord) []ProjectionYear {
	yearly := projectionInitialInvestment * rec.DYAnnual / 100

	out := make([]ProjectionYear, 10)
	cumulative := 0.0
	for i := range out {
		cumulative += yearly
		out[i] = ProjectionYear{
			Year:                i + 1,
			CumulativeDividends: cumulative,
			ReturnPct:           cumulative / projectionInitialInvestment * 100,
		}
	}
	return out
}
