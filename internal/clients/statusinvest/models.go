package statusinvest

// RawFund is one row of the advanced-search payload. Required numeric fields
// are pointers so a missing key is distinguishable from a zero; the
// normalizer rejects records with missing required fields.
type RawFund struct {
	Ticker       string   `json:"ticker"`
	Segment      string   `json:"segment"`
	Price        *float64 `json:"price"`
	DY12M        *float64 `json:"dy12m"`
	PVP          *float64 `json:"pvp"`
	LastDividend float64  `json:"lastdividend"`
	Liquidity    float64  `json:"liquidezmediadiaria"`
}

// searchResponse is the envelope of the advanced-search endpoint.
type searchResponse struct {
	List []RawFund `json:"list"`
}

// FundDetail holds the fields scraped from a fund's detail page.
type FundDetail struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Segment       string  `json:"segment"`
	Price         float64 `json:"price"`
	DY12M         float64 `json:"dy12m"`
	PVP           float64 `json:"pvp"`
	LastDividend  float64 `json:"last_dividend"`
	VacancyRate   float64 `json:"vacancy_rate"`
	ManagementFee float64 `json:"management_fee"`
	NetWorth      float64 `json:"net_worth"`
}
