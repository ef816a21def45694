package universe

import (
	"fmt"
	"math/rand"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
	"github.com/andrevms/fii-radar/internal/domain"
)

// Generator produces a statistically plausible fund universe when the
// external source is unavailable. Its output goes through the same
// normalize/derive pipeline as real payloads, so it satisfies the same
// schema and range invariants.
type Generator struct {
	size int
	rng  *rand.Rand
}

// NewGenerator creates a generator for size funds.
func NewGenerator(size int, seed int64) *Generator {
	return &Generator{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Generate produces raw fund rows with the documented placeholder ranges:
// price in [10,200], annual DY in [4,15], P/VP in [0.6,1.4], last dividend
// in [0.3,2], liquidity in [1e5,5e6].
func (g *Generator) Generate() []statusinvest.RawFund {
	funds := make([]statusinvest.RawFund, g.size)
	for i := range funds {
		price := g.uniform(10, 200)
		dy := g.uniform(4, 15)
		pvp := g.uniform(0.6, 1.4)

		funds[i] = statusinvest.RawFund{
			Ticker:       fmt.Sprintf("FII%02d11", i+1),
			Segment:      domain.Segments[g.rng.Intn(len(domain.Segments))],
			Price:        &price,
			DY12M:        &dy,
			PVP:          &pvp,
			LastDividend: g.uniform(0.3, 2),
			Liquidity:    g.uniform(100_000, 5_000_000),
		}
	}
	return funds
}
