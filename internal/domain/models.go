package domain

import "time"

// Catalog of segments used by the synthetic universe. A real feed may carry
// additional segments; nothing below assumes the catalog is closed.
var Segments = []string{
	"Logistics",
	"Corporate",
	"Receivables",
	"Shopping",
	"Hybrid",
	"Residential",
	"Hospital",
}

// FundRecord is one fully-derived row of the fund universe.
// First-order derived fields (DYMonthly, FairPrice, IsOpportunity) are
// resolved at normalization time; second-order fields (SharpeRatio,
// TIREstimate, PVPSpread) by the indicator deriver. Consumers never compute
// these themselves.
type FundRecord struct {
	Ticker        string  `json:"ticker"`
	Segment       string  `json:"segment"`
	Price         float64 `json:"price"`
	DYAnnual      float64 `json:"dy_annual"`
	DYMonthly     float64 `json:"dy_monthly"`
	PVP           float64 `json:"pvp"`
	FairPrice     float64 `json:"fair_price"`
	IsOpportunity bool    `json:"is_opportunity"`
	LastDividend  float64 `json:"last_dividend"`
	CapRate       float64 `json:"cap_rate"`
	Vacancy       float64 `json:"vacancy"`
	Liquidity     float64 `json:"liquidity"`
	ManagementFee float64 `json:"management_fee"`
	Volatility    float64 `json:"volatility"`
	SharpeRatio   float64 `json:"sharpe_ratio"`
	TIREstimate   float64 `json:"tir_estimate"`
	PVPSpread     float64 `json:"pvp_spread"`

	// HistAvgPVP backs PVPSpread. Synthesized until a real historical feed
	// is wired in.
	HistAvgPVP float64 `json:"hist_avg_pvp,omitempty"`
}

// Universe is an immutable snapshot of the fund universe. It is replaced
// wholesale on refresh, never mutated in place.
type Universe struct {
	funds     []FundRecord
	byTicker  map[string]int
	FetchedAt time.Time
	Source    string // "statusinvest" or "synthetic"
}

// NewUniverse builds a snapshot from fully-derived records. Records with a
// ticker already present in the snapshot are dropped (first wins).
func NewUniverse(funds []FundRecord, source string, fetchedAt time.Time) *Universe {
	u := &Universe{
		funds:     make([]FundRecord, 0, len(funds)),
		byTicker:  make(map[string]int, len(funds)),
		FetchedAt: fetchedAt,
		Source:    source,
	}
	for _, f := range funds {
		if _, dup := u.byTicker[f.Ticker]; dup {
			continue
		}
		u.byTicker[f.Ticker] = len(u.funds)
		u.funds = append(u.funds, f)
	}
	return u
}

// Len returns the number of funds in the snapshot.
func (u *Universe) Len() int {
	return len(u.funds)
}

// Funds returns a copy of the record slice so callers cannot mutate the
// snapshot.
func (u *Universe) Funds() []FundRecord {
	out := make([]FundRecord, len(u.funds))
	copy(out, u.funds)
	return out
}

// Get returns the record for a ticker, or false if unknown.
func (u *Universe) Get(ticker string) (FundRecord, bool) {
	i, ok := u.byTicker[ticker]
	if !ok {
		return FundRecord{}, false
	}
	return u.funds[i], true
}

// Tickers returns all tickers in snapshot order.
func (u *Universe) Tickers() []string {
	out := make([]string, len(u.funds))
	for i, f := range u.funds {
		out[i] = f.Ticker
	}
	return out
}

// DistinctSegments returns the number of distinct segments in the snapshot.
func (u *Universe) DistinctSegments() int {
	seen := make(map[string]struct{})
	for _, f := range u.funds {
		if f.Segment != "" {
			seen[f.Segment] = struct{}{}
		}
	}
	return len(seen)
}

// HistoricalPoint is one monthly observation in a fund's history series.
type HistoricalPoint struct {
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	Dividend float64   `json:"dividend"`
	PVP      float64   `json:"pvp"`
	Vacancy  float64   `json:"vacancy"`
	CapRate  float64   `json:"cap_rate"`
}
