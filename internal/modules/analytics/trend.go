package analytics

import (
	"github.com/markcheno/go-talib"

	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// trendSMAPeriod is the moving-average window over the monthly series.
const trendSMAPeriod = 6

// HistoryTrend summarizes a fund's monthly history series for the detail
// view.
type HistoryTrend struct {
	Months             int     `json:"months"`
	PriceSMA           float64 `json:"price_sma"`
	PriceVsSMAPct      float64 `json:"price_vs_sma_pct"`
	RealizedVolatility float64 `json:"realized_volatility"` // percent, annualized
	PricePVPCorr       float64 `json:"price_pvp_corr"`
}

// AnalyzeHistory derives trend statistics from a monthly history series.
// Returns a zero result when the series is shorter than the SMA window.
func AnalyzeHistory(points []domain.HistoricalPoint) HistoryTrend {
	if len(points) < trendSMAPeriod {
		return HistoryTrend{Months: len(points)}
	}

	prices := make([]float64, len(points))
	pvps := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
		pvps[i] = p.PVP
	}

	sma := talib.Sma(prices, trendSMAPeriod)
	last := len(prices) - 1

	trend := HistoryTrend{
		Months:             len(points),
		PriceSMA:           sma[last],
		RealizedVolatility: formulas.AnnualizedVolatility(formulas.CalculateReturns(prices)),
		PricePVPCorr:       formulas.Correlation(prices, pvps),
	}
	if sma[last] > 0 {
		trend.PriceVsSMAPct = (prices[last]/sma[last] - 1) * 100
	}

	return trend
}
