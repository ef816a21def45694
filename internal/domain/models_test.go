package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniverseDeduplicates(t *testing.T) {
	u := NewUniverse([]FundRecord{
		{Ticker: "HGLG11", Price: 160},
		{Ticker: "KNRI11", Price: 130},
		{Ticker: "HGLG11", Price: 999},
	}, "test", time.Now())

	assert.Equal(t, 2, u.Len())

	rec, ok := u.Get("HGLG11")
	require.True(t, ok)
	assert.Equal(t, 160.0, rec.Price, "first record wins")
}

func TestUniverseGet(t *testing.T) {
	u := NewUniverse([]FundRecord{{Ticker: "HGLG11"}}, "test", time.Now())

	_, ok := u.Get("HGLG11")
	assert.True(t, ok)

	_, ok = u.Get("NOPE11")
	assert.False(t, ok)
}

func TestUniverseFundsReturnsCopy(t *testing.T) {
	u := NewUniverse([]FundRecord{{Ticker: "HGLG11", Price: 160}}, "test", time.Now())

	funds := u.Funds()
	funds[0].Price = 0

	rec, _ := u.Get("HGLG11")
	assert.Equal(t, 160.0, rec.Price, "snapshot is immutable")
}

func TestUniverseTickersOrder(t *testing.T) {
	u := NewUniverse([]FundRecord{
		{Ticker: "MXRF11"}, {Ticker: "HGLG11"}, {Ticker: "KNRI11"},
	}, "test", time.Now())

	assert.Equal(t, []string{"MXRF11", "HGLG11", "KNRI11"}, u.Tickers())
}

func TestDistinctSegments(t *testing.T) {
	u := NewUniverse([]FundRecord{
		{Ticker: "A11", Segment: "Logistics"},
		{Ticker: "B11", Segment: "Logistics"},
		{Ticker: "C11", Segment: "Corporate"},
		{Ticker: "D11"},
	}, "test", time.Now())

	assert.Equal(t, 2, u.DistinctSegments())
}
