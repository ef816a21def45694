package portfolio

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrevms/fii-radar/internal/database"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db.Conn()))

	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestRepositoryUpsert(t *testing.T) {
	repo := setupTestRepo(t)

	pos := Position{
		Ticker: "HGLG11", Quantity: 10, AvgPrice: 150, CurrentPrice: 160,
		Segment: "Logistics", DYAnnual: 9.0, DYMonthly: 0.75, PVP: 0.95,
	}
	require.NoError(t, repo.Upsert(pos))

	got, err := repo.GetByTicker("HGLG11")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(10), got.Quantity)
	assert.NotEmpty(t, got.UpdatedAt)

	// Second upsert replaces, not duplicates
	pos.Quantity = 20
	require.NoError(t, repo.Upsert(pos))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(20), all[0].Quantity)
}

func TestRepositoryGetByTickerMissing(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.GetByTicker("NOPE11")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepositoryDelete(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(Position{Ticker: "HGLG11", Quantity: 1, AvgPrice: 1, CurrentPrice: 1, Segment: "Logistics"}))

	deleted, err := repo.Delete("HGLG11")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete("HGLG11")
	require.NoError(t, err)
	assert.False(t, deleted)
}
