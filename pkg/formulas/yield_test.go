package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDividendYieldAnnual(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		dividend float64
		expected float64
	}{
		{"typical fund", 100.0, 0.75, 9.0},
		{"zero price", 0, 0.75, 0},
		{"negative price", -10, 0.75, 0},
		{"zero dividend", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DividendYieldAnnual(tt.price, tt.dividend), 1e-9)
		})
	}
}

func TestFairPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		pvp      float64
		expected float64
	}{
		{"below book", 90.0, 0.9, 100.0},
		{"above book", 120.0, 1.2, 100.0},
		{"at book", 100.0, 1.0, 100.0},
		{"zero pvp falls back to price", 85.0, 0, 85.0},
		{"negative pvp falls back to price", 85.0, -0.5, 85.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FairPrice(tt.price, tt.pvp), 1e-9)
		})
	}
}

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name       string
		dy         float64
		riskFree   float64
		volatility float64
		expected   float64
	}{
		{"positive excess yield", 10.5, 4.5, 20.0, 0.3},
		{"negative excess yield", 3.0, 4.5, 15.0, -0.1},
		{"zero volatility", 10.0, 4.5, 0, 0},
		{"negative volatility", 10.0, 4.5, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SharpeRatio(tt.dy, tt.riskFree, tt.volatility), 1e-9)
		})
	}
}

func TestYieldOnCost(t *testing.T) {
	assert.InDelta(t, 12.0, YieldOnCost(1.0, 100.0), 1e-9)
	assert.Equal(t, 0.0, YieldOnCost(1.0, 0))
}

func TestGordonFairPrice(t *testing.T) {
	// 0.70 * 12 / ((10 - 3) / 100) = 8.4 / 0.07 = 120
	assert.InDelta(t, 120.0, GordonFairPrice(0.70, 3.0, 10.0), 1e-9)

	// No finite price when discount does not exceed growth
	assert.Equal(t, 0.0, GordonFairPrice(0.70, 10.0, 10.0))
	assert.Equal(t, 0.0, GordonFairPrice(0.70, 12.0, 10.0))
}

func TestCapRate(t *testing.T) {
	assert.InDelta(t, 8.0, CapRate(80_000, 1_000_000), 1e-9)
	assert.Equal(t, 0.0, CapRate(80_000, 0))
}
