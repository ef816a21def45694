package universe

import (
	"fmt"
	"strings"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// Opportunity flag thresholds: a fund yielding more than 8% a year while
// trading below book value.
const (
	opportunityMinDY  = 8.0
	opportunityMaxPVP = 1.0
)

// Normalize maps a raw search row into the canonical fund schema and derives
// the first-order indicators. Records missing a required field are rejected,
// not defaulted.
func Normalize(raw statusinvest.RawFund) (domain.FundRecord, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw.Ticker))
	if ticker == "" {
		return domain.FundRecord{}, fmt.Errorf("record has no ticker")
	}
	if raw.Segment == "" {
		return domain.FundRecord{}, fmt.Errorf("record %s has no segment", ticker)
	}
	if raw.Price == nil || raw.DY12M == nil || raw.PVP == nil {
		return domain.FundRecord{}, fmt.Errorf("record %s is missing required fields", ticker)
	}
	if *raw.Price <= 0 {
		return domain.FundRecord{}, fmt.Errorf("record %s has non-positive price %.2f", ticker, *raw.Price)
	}
	if *raw.DY12M < 0 {
		return domain.FundRecord{}, fmt.Errorf("record %s has negative dividend yield %.2f", ticker, *raw.DY12M)
	}

	rec := domain.FundRecord{
		Ticker:       ticker,
		Segment:      raw.Segment,
		Price:        *raw.Price,
		DYAnnual:     *raw.DY12M,
		DYMonthly:    *raw.DY12M / 12,
		PVP:          *raw.PVP,
		LastDividend: raw.LastDividend,
		Liquidity:    raw.Liquidity,
	}

	rec.FairPrice = formulas.FairPrice(rec.Price, rec.PVP)
	rec.IsOpportunity = rec.DYAnnual > opportunityMinDY && rec.PVP < opportunityMaxPVP

	return rec, nil
}
