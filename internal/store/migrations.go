package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS slots (
			id              TEXT PRIMARY KEY,
			day             TEXT NOT NULL,
			tracking_number TEXT NOT NULL,
			carrier         TEXT NOT NULL,
			location        TEXT NOT NULL,
			dt_from         TEXT NOT NULL,
			dt_to           TEXT NOT NULL,
			color           TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_slots_day ON slots(day);
		CREATE INDEX IF NOT EXISTS idx_slots_location ON slots(day, location);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating slots table: %w", err)
	}

	return nil
}
