// Package export serializes universes and portfolios to CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/internal/modules/portfolio"
)

var universeHeader = []string{
	"ticker", "segment", "price", "dy_annual", "dy_monthly", "pvp",
	"fair_price", "is_opportunity", "last_dividend", "cap_rate", "vacancy",
	"liquidity", "management_fee", "volatility", "sharpe_ratio",
	"tir_estimate", "pvp_spread",
}

var positionsHeader = []string{
	"ticker", "quantity", "avg_price", "current_price", "segment",
	"dy_annual", "dy_monthly", "pvp",
}

// WriteUniverseCSV writes the universe as UTF-8 comma-separated rows, header
// first, no index column.
func WriteUniverseCSV(w io.Writer, u *domain.Universe) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(universeHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range u.Funds() {
		row := []string{
			rec.Ticker,
			rec.Segment,
			num(rec.Price),
			num(rec.DYAnnual),
			num(rec.DYMonthly),
			num(rec.PVP),
			num(rec.FairPrice),
			strconv.FormatBool(rec.IsOpportunity),
			num(rec.LastDividend),
			num(rec.CapRate),
			num(rec.Vacancy),
			num(rec.Liquidity),
			num(rec.ManagementFee),
			num(rec.Volatility),
			num(rec.SharpeRatio),
			num(rec.TIREstimate),
			num(rec.PVPSpread),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", rec.Ticker, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePositionsCSV writes portfolio positions as CSV.
func WritePositionsCSV(w io.Writer, positions []portfolio.Position) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(positionsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range positions {
		row := []string{
			p.Ticker,
			strconv.FormatInt(p.Quantity, 10),
			num(p.AvgPrice),
			num(p.CurrentPrice),
			p.Segment,
			num(p.DYAnnual),
			num(p.DYMonthly),
			num(p.PVP),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", p.Ticker, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
