package portfolio

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles position persistence.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a position repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "positions").Logger(),
	}
}

// GetAll returns every position, ordered by ticker.
func (r *Repository) GetAll() ([]Position, error) {
	rows, err := r.db.Query(`
		SELECT ticker, quantity, avg_price, current_price, segment,
		       dy_annual, dy_monthly, pvp, updated_at
		FROM positions ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.Ticker, &p.Quantity, &p.AvgPrice, &p.CurrentPrice,
			&p.Segment, &p.DYAnnual, &p.DYMonthly, &p.PVP, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating positions: %w", err)
	}

	return positions, nil
}

// GetByTicker returns one position, or nil when the ticker is not held.
func (r *Repository) GetByTicker(ticker string) (*Position, error) {
	row := r.db.QueryRow(`
		SELECT ticker, quantity, avg_price, current_price, segment,
		       dy_annual, dy_monthly, pvp, updated_at
		FROM positions WHERE ticker = ?`, ticker)

	var p Position
	err := row.Scan(&p.Ticker, &p.Quantity, &p.AvgPrice, &p.CurrentPrice,
		&p.Segment, &p.DYAnnual, &p.DYMonthly, &p.PVP, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan position: %w", err)
	}

	return &p, nil
}

// Upsert inserts or replaces a position row.
func (r *Repository) Upsert(p Position) error {
	p.UpdatedAt = time.Now().Format(time.RFC3339)

	_, err := r.db.Exec(`
		INSERT INTO positions
		    (ticker, quantity, avg_price, current_price, segment,
		     dy_annual, dy_monthly, pvp, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET
		    quantity = excluded.quantity,
		    avg_price = excluded.avg_price,
		    current_price = excluded.current_price,
		    segment = excluded.segment,
		    dy_annual = excluded.dy_annual,
		    dy_monthly = excluded.dy_monthly,
		    pvp = excluded.pvp,
		    updated_at = excluded.updated_at`,
		p.Ticker, p.Quantity, p.AvgPrice, p.CurrentPrice, p.Segment,
		p.DYAnnual, p.DYMonthly, p.PVP, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert position %s: %w", p.Ticker, err)
	}

	return nil
}

// Delete removes a position. Returns whether a row was deleted.
func (r *Repository) Delete(ticker string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM positions WHERE ticker = ?", ticker)
	if err != nil {
		return false, fmt.Errorf("failed to delete position %s: %w", ticker, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n > 0, nil
}
