package universe

import (
	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// Deriver computes the second-order indicators of a normalized record.
type Deriver struct {
	feed         IndicatorFeed
	riskFreeRate float64 // percent
}

// NewDeriver creates a deriver backed by the given feed.
func NewDeriver(feed IndicatorFeed, riskFreeRate float64) *Deriver {
	return &Deriver{feed: feed, riskFreeRate: riskFreeRate}
}

// Derive fills the advanced indicators on a normalized record. Metrics the
// source already supplied (positive values) are kept; everything else comes
// from the feed.
func (d *Deriver) Derive(rec domain.FundRecord) domain.FundRecord {
	metrics := d.feed.AssetMetrics(rec.Ticker)
	if rec.CapRate <= 0 {
		rec.CapRate = metrics.CapRate
	}
	if rec.Vacancy <= 0 {
		rec.Vacancy = metrics.Vacancy
	}
	if rec.Liquidity <= 0 {
		rec.Liquidity = metrics.Liquidity
	}
	if rec.ManagementFee <= 0 {
		rec.ManagementFee = metrics.ManagementFee
	}
	if rec.Volatility <= 0 {
		rec.Volatility = metrics.Volatility
	}

	rec.SharpeRatio = formulas.SharpeRatio(rec.DYAnnual, d.riskFreeRate, rec.Volatility)

	rec.HistAvgPVP = d.feed.HistoricalAvgPVP(rec.Ticker, rec.PVP)
	if rec.HistAvgPVP > 0 {
		rec.PVPSpread = (rec.PVP/rec.HistAvgPVP - 1) * 100
	}

	rec.TIREstimate = d.deriveTIR(rec)

	return rec
}

// deriveTIR prefers a cash-flow based internal rate of return when the feed
// has a series for the ticker, and falls back to the noisy yield heuristic
// otherwise.
func (d *Deriver) deriveTIR(rec domain.FundRecord) float64 {
	if flows := d.feed.CashFlows(rec.Ticker); len(flows) > 0 {
		return formulas.IRR(flows) * 100
	}
	return rec.DYAnnual + d.feed.TIRNoise(rec.Ticker)
}
