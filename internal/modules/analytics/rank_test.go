package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/domain"
)

func rankUniverse() *domain.Universe {
	return domain.NewUniverse([]domain.FundRecord{
		{Ticker: "AAAA11", Segment: "Logistics", DYAnnual: 12.0, PVP: 0.8, CapRate: 9.0, Vacancy: 3.0},
		{Ticker: "BBBB11", Segment: "Logistics", DYAnnual: 10.0, PVP: 0.9, CapRate: 8.0, Vacancy: 6.0},
		{Ticker: "CCCC11", Segment: "Corporate", DYAnnual: 8.0, PVP: 1.0, CapRate: 7.0, Vacancy: 9.0},
		{Ticker: "DDDD11", Segment: "Corporate", DYAnnual: 6.0, PVP: 1.1, CapRate: 6.0, Vacancy: 12.0},
	}, "test", time.Now())
}

func TestRankHigherBetterMetric(t *testing.T) {
	u := rankUniverse()

	best, ok := Rank(u, "AAAA11", MetricDY)
	require.True(t, ok)
	assert.Equal(t, 1, best.Rank)
	assert.Equal(t, 4, best.Total)
	// 100 - 1/4*100 = 75
	assert.InDelta(t, 75.0, best.Percentile, 1e-9)

	worst, ok := Rank(u, "DDDD11", MetricDY)
	require.True(t, ok)
	assert.Equal(t, 4, worst.Rank)
	assert.InDelta(t, 0.0, worst.Percentile, 1e-9)
}

func TestRankLowerBetterMetric(t *testing.T) {
	u := rankUniverse()

	// Lowest P/VP ranks first; percentile keeps the rank orientation
	best, ok := Rank(u, "AAAA11", MetricPVP)
	require.True(t, ok)
	assert.Equal(t, 1, best.Rank)
	assert.InDelta(t, 25.0, best.Percentile, 1e-9)

	worst, ok := Rank(u, "DDDD11", MetricPVP)
	require.True(t, ok)
	assert.Equal(t, 4, worst.Rank)
	assert.InDelta(t, 100.0, worst.Percentile, 1e-9)
}

func TestRankTiesShareMinimumRank(t *testing.T) {
	u := domain.NewUniverse([]domain.FundRecord{
		{Ticker: "AAAA11", DYAnnual: 10.0},
		{Ticker: "BBBB11", DYAnnual: 10.0},
		{Ticker: "CCCC11", DYAnnual: 8.0},
	}, "test", time.Now())

	a, _ := Rank(u, "AAAA11", MetricDY)
	b, _ := Rank(u, "BBBB11", MetricDY)
	c, _ := Rank(u, "CCCC11", MetricDY)

	assert.Equal(t, 1, a.Rank)
	assert.Equal(t, 1, b.Rank)
	assert.Equal(t, 3, c.Rank)
}

func TestRankUnknownInputs(t *testing.T) {
	u := rankUniverse()

	_, ok := Rank(u, "NOPE11", MetricDY)
	assert.False(t, ok)

	_, ok = Rank(u, "AAAA11", Metric("sharpe"))
	assert.False(t, ok)
}

func TestRankAll(t *testing.T) {
	u := rankUniverse()

	results, ok := RankAll(u, "AAAA11")
	require.True(t, ok)
	require.Len(t, results, 4)

	metrics := make(map[Metric]RankResult)
	for _, r := range results {
		metrics[r.Metric] = r
	}
	assert.Equal(t, 1, metrics[MetricDY].Rank)
	assert.Equal(t, 1, metrics[MetricPVP].Rank)
	assert.Equal(t, 1, metrics[MetricCapRate].Rank)
	assert.Equal(t, 1, metrics[MetricVacancy].Rank)

	_, ok = RankAll(u, "NOPE11")
	assert.False(t, ok)
}

func TestCompareToSegment(t *testing.T) {
	u := rankUniverse()

	cmp, ok := CompareToSegment(u, "AAAA11")
	require.True(t, ok)

	assert.Equal(t, "Logistics", cmp.Segment)
	assert.Equal(t, 2, cmp.FundCount)
	assert.InDelta(t, 11.0, cmp.SegmentDY, 1e-9)
	assert.InDelta(t, 0.85, cmp.SegmentPVP, 1e-9)
	assert.InDelta(t, 8.5, cmp.SegmentCap, 1e-9)
	assert.InDelta(t, 4.5, cmp.SegmentVacant, 1e-9)
	assert.Equal(t, 12.0, cmp.DYAnnual)

	_, ok = CompareToSegment(u, "NOPE11")
	assert.False(t, ok)
}
