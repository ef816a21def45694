package universe

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/andrevms/fii-radar/internal/domain"
)

// historyMonths is the length of the synthesized series.
const historyMonths = 24

// AdvancedHistory returns a monthly time series for one ticker, empty when
// the ticker is unknown.
//
// Until a real historical feed exists the series is synthesized around the
// fund's current values, seeded by ticker so detail views are stable across
// calls. Values are clamped to sane ranges regardless of the noise drawn.
func (s *Service) AdvancedHistory(ticker string) []domain.HistoricalPoint {
	rec, ok := s.Universe().Get(ticker)
	if !ok {
		return nil
	}

	h := fnv.New64a()
	h.Write([]byte(rec.Ticker))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	now := time.Now()
	points := make([]domain.HistoricalPoint, historyMonths)
	for i := range points {
		monthsAgo := historyMonths - 1 - i

		p := domain.HistoricalPoint{
			Date:     now.AddDate(0, -monthsAgo, 0),
			Price:    rec.Price + rng.NormFloat64()*rec.Price*0.1,
			Dividend: rec.LastDividend + rng.NormFloat64()*rec.LastDividend*0.2,
			PVP:      rec.PVP + rng.NormFloat64()*0.1,
			Vacancy:  rec.Vacancy + rng.NormFloat64()*2,
			CapRate:  rec.CapRate + rng.NormFloat64()*1,
		}

		p.Price = max(p.Price, 5)
		p.Dividend = max(p.Dividend, 0)
		p.PVP = max(p.PVP, 0.3)
		p.Vacancy = clamp(p.Vacancy, 0, 100)
		p.CapRate = clamp(p.CapRate, 3, 20)

		points[i] = p
	}

	return points
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
