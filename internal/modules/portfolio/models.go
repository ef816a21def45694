package portfolio

// Position is one holding in the user's portfolio, keyed by ticker. The
// market fields are snapshots copied from the matching fund record when the
// position was added or last synced, not live references.
type Position struct {
	Ticker       string  `json:"ticker"`
	Quantity     int64   `json:"quantity"`
	AvgPrice     float64 `json:"avg_price"`
	CurrentPrice float64 `json:"current_price"`
	Segment      string  `json:"segment"`
	DYAnnual     float64 `json:"dy_annual"`
	DYMonthly    float64 `json:"dy_monthly"`
	PVP          float64 `json:"pvp"`
	UpdatedAt    string  `json:"updated_at,omitempty"` // ISO datetime
}

// PositionMetrics is a position with its derived financial metrics.
type PositionMetrics struct {
	Position
	Invested         float64 `json:"invested"`
	CurrentValue     float64 `json:"current_value"`
	ReturnPct        float64 `json:"return_pct"`
	MonthlyDividends float64 `json:"monthly_dividends"`
	AnnualDividends  float64 `json:"annual_dividends"`
	YieldOnCost      float64 `json:"yield_on_cost"`
}

// RiskAnalysis compares the portfolio against the market universe.
type RiskAnalysis struct {
	PortfolioDY     float64  `json:"portfolio_dy"`
	MarketDY        float64  `json:"market_dy"`
	PortfolioPVP    float64  `json:"portfolio_pvp"`
	MarketPVP       float64  `json:"market_pvp"`
	SegmentCount    int      `json:"segment_count"`
	TotalSegments   int      `json:"total_segments"`
	Diversification float64  `json:"diversification"` // percent, [0,100]
	Recommendations []string `json:"recommendations"`
}

// Summary aggregates the whole portfolio.
type Summary struct {
	Positions             []PositionMetrics `json:"positions"`
	TotalInvested         float64           `json:"total_invested"`
	TotalCurrent          float64           `json:"total_current"`
	TotalReturnPct        float64           `json:"total_return_pct"`
	TotalMonthlyDividends float64           `json:"total_monthly_dividends"`
	TotalAnnualDividends  float64           `json:"total_annual_dividends"`
	Risk                  RiskAnalysis      `json:"risk"`
}
