package screener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/domain"
)

func rankingUniverse() *domain.Universe {
	return domain.NewUniverse([]domain.FundRecord{
		{Ticker: "AAAA11", Price: 90, DYAnnual: 10.0, PVP: 0.9, SharpeRatio: 0.30, FairPrice: 100},
		{Ticker: "BBBB11", Price: 150, DYAnnual: 12.0, PVP: 1.1, SharpeRatio: 0.40, FairPrice: 136},
		{Ticker: "CCCC11", Price: 80, DYAnnual: 7.0, PVP: 0.8, SharpeRatio: 0.10, FairPrice: 100},
		{Ticker: "DDDD11", Price: 60, DYAnnual: 9.5, PVP: 1.2, SharpeRatio: 0.25, FairPrice: 50},
	}, "test", time.Now())
}

func TestRankTop(t *testing.T) {
	u := rankingUniverse()

	got := RankTop(u, 100, 10)

	// BBBB11 is excluded by the price ceiling
	require.Len(t, got, 3)

	// AAAA11: 10 - 1.8 + 0.9 = 9.1
	// DDDD11: 9.5 - 2.4 + 0.75 = 7.85
	// CCCC11: 7 - 1.6 + 0.3 = 5.7
	assert.Equal(t, "AAAA11", got[0].Ticker)
	assert.InDelta(t, 9.1, got[0].Score, 1e-9)
	assert.Equal(t, "DDDD11", got[1].Ticker)
	assert.Equal(t, "CCCC11", got[2].Ticker)

	// Descending scores
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRankTopLimit(t *testing.T) {
	u := rankingUniverse()

	assert.Len(t, RankTop(u, 200, 2), 2)
	assert.Len(t, RankTop(u, 200, 10), 4)
	assert.Empty(t, RankTop(u, 1, 10))
}

func TestRankTopStableTies(t *testing.T) {
	u := domain.NewUniverse([]domain.FundRecord{
		{Ticker: "TIE111", Price: 50, DYAnnual: 10.0, PVP: 1.0, SharpeRatio: 0.2},
		{Ticker: "TIE211", Price: 50, DYAnnual: 10.0, PVP: 1.0, SharpeRatio: 0.2},
		{Ticker: "TIE311", Price: 50, DYAnnual: 10.0, PVP: 1.0, SharpeRatio: 0.2},
	}, "test", time.Now())

	got := RankTop(u, 100, 10)

	require.Len(t, got, 3)
	assert.Equal(t, "TIE111", got[0].Ticker)
	assert.Equal(t, "TIE211", got[1].Ticker)
	assert.Equal(t, "TIE311", got[2].Ticker)
}

func TestBestOpportunities(t *testing.T) {
	u := rankingUniverse()

	got := BestOpportunities(u, 5)
	require.Len(t, got, 4)

	// BBBB11: 12 - 2.2 + 0.8 = 10.6 tops the Sharpe*2 weighting
	assert.Equal(t, "BBBB11", got[0].Ticker)
	assert.InDelta(t, 10.6, got[0].Score, 1e-9)

	assert.Len(t, BestOpportunities(u, 2), 2)
}

func TestBestOpportunitiesWeightDiffersFromRankTop(t *testing.T) {
	u := rankingUniverse()

	top := RankTop(u, 1000, 10)
	best := BestOpportunities(u, 10)

	// Same fund, different Sharpe weight: score gap is exactly SharpeRatio
	for _, bf := range best {
		for _, tf := range top {
			if tf.Ticker == bf.Ticker {
				assert.InDelta(t, tf.SharpeRatio, tf.Score-bf.Score, 1e-9)
			}
		}
	}
}

func TestBelowFairPrice(t *testing.T) {
	u := rankingUniverse()

	got := BelowFairPrice(u)

	// DDDD11 (fair 50 < price 60) and BBBB11 (fair 136 < price 150) excluded
	require.Len(t, got, 2)

	// CCCC11 discount 25% beats AAAA11 11.1%
	assert.Equal(t, "CCCC11", got[0].Ticker)
	assert.InDelta(t, 0.25, got[0].Score, 1e-9)
	assert.Equal(t, "AAAA11", got[1].Ticker)
	assert.InDelta(t, 100.0/90.0-1, got[1].Score, 1e-9)
}

func TestHighestYield(t *testing.T) {
	got := HighestYield(rankingUniverse(), 2)

	require.Len(t, got, 2)
	assert.Equal(t, "BBBB11", got[0].Ticker)
	assert.Equal(t, "AAAA11", got[1].Ticker)
}

func TestLowestPVP(t *testing.T) {
	got := LowestPVP(rankingUniverse(), 2)

	require.Len(t, got, 2)
	assert.Equal(t, "CCCC11", got[0].Ticker)
	assert.Equal(t, "AAAA11", got[1].Ticker)
}
