package screener

import (
	"sort"

	"github.com/andrevms/fii-radar/internal/domain"
)

// ScoredFund is a fund with the score that ranked it.
type ScoredFund struct {
	domain.FundRecord
	Score float64 `json:"score"`
}

// RankTop filters the universe to funds priced at or below maxPrice, scores
// them as
//
//	score = DY Annual - 2*P/VP + 3*Sharpe
//
// and returns the top limit by descending score. The sort is stable, so ties
// keep snapshot order.
func RankTop(u *domain.Universe, maxPrice float64, limit int) []ScoredFund {
	var scored []ScoredFund
	for _, rec := range u.Funds() {
		if rec.Price > maxPrice {
			continue
		}
		scored = append(scored, ScoredFund{
			FundRecord: rec,
			Score:      rec.DYAnnual - 2*rec.PVP + 3*rec.SharpeRatio,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return truncate(scored, limit)
}

// BestOpportunities ranks the whole universe by
//
//	score = DY Annual - 2*P/VP + 2*Sharpe
//
// and returns the top limit. The Sharpe weight intentionally differs from
// RankTop's; the two lists are distinct products and their formulas are kept
// separate.
func BestOpportunities(u *domain.Universe, limit int) []ScoredFund {
	funds := u.Funds()
	scored := make([]ScoredFund, len(funds))
	for i, rec := range funds {
		scored[i] = ScoredFund{
			FundRecord: rec,
			Score:      rec.DYAnnual - 2*rec.PVP + 2*rec.SharpeRatio,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return truncate(scored, limit)
}

// BelowFairPrice returns funds trading under their fair price, ranked by the
// discount (FairPrice/Price - 1) descending. The Score field carries the
// discount as a fraction.
func BelowFairPrice(u *domain.Universe) []ScoredFund {
	var scored []ScoredFund
	for _, rec := range u.Funds() {
		if rec.FairPrice <= rec.Price {
			continue
		}
		scored = append(scored, ScoredFund{
			FundRecord: rec,
			Score:      rec.FairPrice/rec.Price - 1,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// HighestYield returns the top limit funds by annual dividend yield.
func HighestYield(u *domain.Universe, limit int) []domain.FundRecord {
	funds := u.Funds()
	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].DYAnnual > funds[j].DYAnnual
	})
	return truncateFunds(funds, limit)
}

// LowestPVP returns the top limit funds by ascending P/VP.
func LowestPVP(u *domain.Universe, limit int) []domain.FundRecord {
	funds := u.Funds()
	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].PVP < funds[j].PVP
	})
	return truncateFunds(funds, limit)
}

func truncate(s []ScoredFund, limit int) []ScoredFund {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func truncateFunds(s []domain.FundRecord, limit int) []domain.FundRecord {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
