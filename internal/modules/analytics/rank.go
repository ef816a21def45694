package analytics

import (
	"github.com/andrevms/fii-radar/internal/domain"
)

// Metric identifies a rankable fund metric.
type Metric string

const (
	MetricDY      Metric = "dy_annual"
	MetricPVP     Metric = "pvp"
	MetricCapRate Metric = "cap_rate"
	MetricVacancy Metric = "vacancy"
)

// metricSpec pairs a value accessor with its orientation.
type metricSpec struct {
	value        func(domain.FundRecord) float64
	higherBetter bool
}

var metricSpecs = map[Metric]metricSpec{
	MetricDY:      {func(r domain.FundRecord) float64 { return r.DYAnnual }, true},
	MetricPVP:     {func(r domain.FundRecord) float64 { return r.PVP }, false},
	MetricCapRate: {func(r domain.FundRecord) float64 { return r.CapRate }, true},
	MetricVacancy: {func(r domain.FundRecord) float64 { return r.Vacancy }, false},
}

// RankResult is a fund's standing in the universe for one metric.
type RankResult struct {
	Metric     Metric  `json:"metric"`
	Rank       int     `json:"rank"`
	Total      int     `json:"total"`
	Percentile float64 `json:"percentile"`
}

// Rank returns a fund's position within the universe for the given metric.
//
// Rank is competition-style: 1 + the number of records strictly better under
// the metric's orientation, so ties share the minimum rank. The percentile is
// rank/total*100 for descending-favorable metrics (P/VP, vacancy) and its
// complement for ascending-favorable ones (DY, cap rate).
func Rank(u *domain.Universe, ticker string, metric Metric) (RankResult, bool) {
	spec, ok := metricSpecs[metric]
	if !ok {
		return RankResult{}, false
	}
	rec, ok := u.Get(ticker)
	if !ok {
		return RankResult{}, false
	}

	own := spec.value(rec)
	rank := 1
	for _, other := range u.Funds() {
		if other.Ticker == rec.Ticker {
			continue
		}
		v := spec.value(other)
		if (spec.higherBetter && v > own) || (!spec.higherBetter && v < own) {
			rank++
		}
	}

	total := u.Len()
	rankPct := float64(rank) / float64(total) * 100

	res := RankResult{
		Metric: metric,
		Rank:   rank,
		Total:  total,
	}
	if spec.higherBetter {
		res.Percentile = 100 - rankPct
	} else {
		res.Percentile = rankPct
	}

	return res, true
}

// RankAll ranks a fund for every supported metric.
func RankAll(u *domain.Universe, ticker string) ([]RankResult, bool) {
	metrics := []Metric{MetricDY, MetricPVP, MetricCapRate, MetricVacancy}

	out := make([]RankResult, 0, len(metrics))
	for _, m := range metrics {
		res, ok := Rank(u, ticker, m)
		if !ok {
			return nil, false
		}
		out = append(out, res)
	}
	return out, true
}
