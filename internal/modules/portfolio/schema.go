package portfolio

import "database/sql"

// PositionsSchema holds the user's portfolio positions, one row per ticker.
const PositionsSchema = `
CREATE TABLE IF NOT EXISTS positions (
    ticker TEXT PRIMARY KEY,
    quantity INTEGER NOT NULL,
    avg_price REAL NOT NULL,
    current_price REAL NOT NULL,
    segment TEXT NOT NULL,
    dy_annual REAL NOT NULL,
    dy_monthly REAL NOT NULL,
    pvp REAL NOT NULL,
    updated_at TEXT NOT NULL
);
`

// InitSchema ensures the positions table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(PositionsSchema)
	return err
}
