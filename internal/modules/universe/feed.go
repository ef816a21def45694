package universe

import (
	"math/rand"
	"sync"
)

// AssetMetrics are the per-fund inputs that the public search payload does
// not carry.
type AssetMetrics struct {
	CapRate       float64 // percent
	Vacancy       float64 // percent, [0,100]
	Liquidity     float64 // average daily traded value
	ManagementFee float64 // percent
	Volatility    float64 // percent, annualized
}

// IndicatorFeed supplies the second-order inputs of the derivation pipeline.
// The synthetic implementation below stands in for a real data feed; a
// production feed can replace it without touching the deriver, as long as it
// honors the same value ranges.
type IndicatorFeed interface {
	// AssetMetrics returns cap rate, vacancy, liquidity, fee and volatility
	// for a ticker.
	AssetMetrics(ticker string) AssetMetrics

	// HistoricalAvgPVP returns the fund's historical average P/VP given its
	// current P/VP.
	HistoricalAvgPVP(ticker string, currentPVP float64) float64

	// TIRNoise returns the bounded perturbation added to the annual yield
	// when no cash-flow series exists for the ticker.
	TIRNoise(ticker string) float64

	// CashFlows returns the fund's projected cash-flow series (initial
	// outflow followed by inflows), or nil when no cash-flow model is
	// available.
	CashFlows(ticker string) []float64
}

// SyntheticFeed draws every metric uniformly from fixed, documented ranges.
// It is a placeholder for a real data source.
type SyntheticFeed struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticFeed creates a synthetic feed. The seed makes output
// reproducible in tests.
func NewSyntheticFeed(seed int64) *SyntheticFeed {
	return &SyntheticFeed{rng: rand.New(rand.NewSource(seed))}
}

func (f *SyntheticFeed) uniform(lo, hi float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return lo + f.rng.Float64()*(hi-lo)
}

// AssetMetrics implements IndicatorFeed.
func (f *SyntheticFeed) AssetMetrics(_ string) AssetMetrics {
	return AssetMetrics{
		CapRate:       f.uniform(5, 12),
		Vacancy:       f.uniform(0, 20),
		Liquidity:     f.uniform(100_000, 5_000_000),
		ManagementFee: f.uniform(0.5, 2),
		Volatility:    f.uniform(10, 30),
	}
}

// HistoricalAvgPVP implements IndicatorFeed.
func (f *SyntheticFeed) HistoricalAvgPVP(_ string, currentPVP float64) float64 {
	return currentPVP * f.uniform(0.8, 1.2)
}

// TIRNoise implements IndicatorFeed.
func (f *SyntheticFeed) TIRNoise(_ string) float64 {
	return f.uniform(-2, 8)
}

// CashFlows implements IndicatorFeed. The synthetic feed has no cash-flow
// model.
func (f *SyntheticFeed) CashFlows(_ string) []float64 {
	return nil
}
