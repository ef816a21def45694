package screener

import (
	"strings"

	"github.com/andrevms/fii-radar/internal/domain"
)

// AllSegments is the sentinel meaning "no segment constraint".
const AllSegments = "All"

// Filter is a conjunction of optional predicates over the fund universe.
// Nil pointers and the zero/sentinel string values mean "no constraint".
type Filter struct {
	Segment      string   `json:"segment,omitempty"`
	MinDY        *float64 `json:"min_dy,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	Ticker       string   `json:"ticker,omitempty"` // case-insensitive substring
	MaxPVP       *float64 `json:"max_pvp,omitempty"`
	MinLiquidity *float64 `json:"min_liquidity,omitempty"`
}

// Apply returns the subset of the universe matching every set predicate, in
// snapshot order.
func (f Filter) Apply(u *domain.Universe) []domain.FundRecord {
	tickerNeedle := strings.ToUpper(f.Ticker)

	var out []domain.FundRecord
	for _, rec := range u.Funds() {
		if f.Segment != "" && f.Segment != AllSegments && rec.Segment != f.Segment {
			continue
		}
		if f.MinDY != nil && rec.DYAnnual < *f.MinDY {
			continue
		}
		if f.MaxPrice != nil && rec.Price > *f.MaxPrice {
			continue
		}
		if tickerNeedle != "" && !strings.Contains(strings.ToUpper(rec.Ticker), tickerNeedle) {
			continue
		}
		if f.MaxPVP != nil && rec.PVP > *f.MaxPVP {
			continue
		}
		if f.MinLiquidity != nil && rec.Liquidity < *f.MinLiquidity {
			continue
		}
		out = append(out, rec)
	}
	return out
}
