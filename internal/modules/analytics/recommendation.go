package analytics

import (
	"github.com/andrevms/fii-radar/internal/domain"
)

// Recommendation labels, mapped from the 0-18 total score.
const (
	StrongBuy  = "Strong Buy"
	Buy        = "Buy"
	Neutral    = "Neutral"
	Sell       = "Sell"
	StrongSell = "Strong Sell"
)

// MaxScore is the highest attainable recommendation score.
const MaxScore = 18

// Recommendation is the rule-based buy/sell assessment of one fund: six
// sub-indicators scored 0-3 each, summed and mapped to a label.
type Recommendation struct {
	Ticker     string         `json:"ticker"`
	Scores     SubScores      `json:"scores"`
	TotalScore int            `json:"total_score"`
	MaxScore   int            `json:"max_score"`
	Label      string         `json:"label"`
	Strengths  []string       `json:"strengths"`
	Cautions   []string       `json:"cautions"`
	Projection YearProjection `json:"projection"`
}

// SubScores are the per-indicator integer scores.
type SubScores struct {
	DY          int `json:"dy"`
	PVP         int `json:"pvp"`
	PriceVsFair int `json:"price_vs_fair"`
	CapRate     int `json:"cap_rate"`
	Vacancy     int `json:"vacancy"`
	Sharpe      int `json:"sharpe"`
}

// YearProjection is the 12-month outlook attached to a recommendation.
type YearProjection struct {
	TargetPrice       float64 `json:"target_price"`
	UpsidePct         float64 `json:"upside_pct"`
	ExpectedReturnPct float64 `json:"expected_return_pct"` // upside + annual DY
	TIREstimate       float64 `json:"tir_estimate"`
}

// Recommend scores a fund against fixed thresholds.
func Recommend(rec domain.FundRecord) Recommendation {
	scores := SubScores{
		DY:          scoreDY(rec.DYAnnual),
		PVP:         scorePVP(rec.PVP),
		PriceVsFair: scorePriceVsFair(rec.Price, rec.FairPrice),
		CapRate:     scoreCapRate(rec.CapRate),
		Vacancy:     scoreVacancy(rec.Vacancy),
		Sharpe:      scoreSharpe(rec.SharpeRatio),
	}

	total := scores.DY + scores.PVP + scores.PriceVsFair +
		scores.CapRate + scores.Vacancy + scores.Sharpe

	r := Recommendation{
		Ticker:     rec.Ticker,
		Scores:     scores,
		TotalScore: total,
		MaxScore:   MaxScore,
		Label:      label(total),
		Projection: project(rec),
	}
	r.Strengths, r.Cautions = assess(scores)

	return r
}

func label(total int) string {
	switch {
	case total >= 14:
		return StrongBuy
	case total >= 10:
		return Buy
	case total >= 7:
		return Neutral
	case total >= 4:
		return Sell
	default:
		return StrongSell
	}
}

func scoreDY(dy float64) int {
	switch {
	case dy > 10:
		return 3
	case dy > 8:
		return 2
	case dy > 6:
		return 1
	default:
		return 0
	}
}

func scorePVP(pvp float64) int {
	switch {
	case pvp < 0.8:
		return 3
	case pvp < 1:
		return 2
	case pvp < 1.2:
		return 1
	default:
		return 0
	}
}

func scorePriceVsFair(price, fair float64) int {
	switch {
	case price < fair*0.9:
		return 3
	case price < fair:
		return 2
	case price < fair*1.1:
		return 1
	default:
		return 0
	}
}

func scoreCapRate(capRate float64) int {
	switch {
	case capRate > 10:
		return 3
	case capRate > 8:
		return 2
	case capRate > 6:
		return 1
	default:
		return 0
	}
}

func scoreVacancy(vacancy float64) int {
	switch {
	case vacancy < 5:
		return 3
	case vacancy < 10:
		return 2
	case vacancy < 15:
		return 1
	default:
		return 0
	}
}

func scoreSharpe(sharpe float64) int {
	switch {
	case sharpe > 1:
		return 3
	case sharpe > 0.5:
		return 2
	case sharpe > 0:
		return 1
	default:
		return 0
	}
}

// assess turns sub-scores into strength (>=2) and caution (<=1) lines.
func assess(s SubScores) (strengths, cautions []string) {
	type line struct {
		score    int
		strength string
		caution  string
	}
	lines := []line{
		{s.DY, "Dividend yield above the market average", "Dividend yield below the market average"},
		{s.PVP, "P/VP below 1, trading at a discount to book", "P/VP above 1, possibly overvalued"},
		{s.PriceVsFair, "Current price below fair price", "Current price above fair price"},
		{s.CapRate, "High cap rate, productive underlying assets", "Low cap rate, weak asset profitability"},
		{s.Vacancy, "Low vacancy, well-occupied properties", "High vacancy, occupancy problems"},
		{s.Sharpe, "Good risk-adjusted return (Sharpe)", "Unfavorable risk-adjusted return (Sharpe)"},
	}

	for _, l := range lines {
		if l.score >= 2 {
			strengths = append(strengths, l.strength)
		} else {
			cautions = append(cautions, l.caution)
		}
	}
	return strengths, cautions
}

// project builds the 12-month outlook: target at 10% above fair price,
// expected return as upside plus the annual yield.
func project(rec domain.FundRecord) YearProjection {
	p := YearProjection{
		TargetPrice: rec.FairPrice * 1.1,
		TIREstimate: rec.TIREstimate,
	}
	if rec.Price > 0 {
		p.UpsidePct = (p.TargetPrice/rec.Price - 1) * 100
	}
	p.ExpectedReturnPct = p.UpsidePct + rec.DYAnnual
	return p
}
