package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jgurria/dockplan/internal/timeline"
)

// SQLite implements Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SlotsForDay returns all slots whose start falls on the given day,
// ordered by location then start time.
func (s *SQLite) SlotsForDay(ctx context.Context, day string) ([]timeline.Slot, error) {
	query := `
		SELECT id, tracking_number, carrier, location, dt_from, dt_to, color
		FROM slots
		WHERE day = ?
		ORDER BY location, dt_from
	`

	rows, err := s.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var slots []timeline.Slot
	for rows.Next() {
		var (
			slot  timeline.Slot
			color sql.NullString
		)
		err := rows.Scan(
			&slot.ID,
			&slot.TrackingNumber,
			&slot.Carrier,
			&slot.Location,
			&slot.DateTimeFrom,
			&slot.DateTimeTo,
			&color,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		if color.Valid {
			slot.Color = color.String
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}

	return slots, nil
}

// SaveSlot inserts or replaces a slot by id. The day column is derived
// from the start date so SlotsForDay stays a single indexed lookup.
func (s *SQLite) SaveSlot(ctx context.Context, slot timeline.Slot) error {
	if slot.ID == "" {
		return fmt.Errorf("saving slot: id must be set")
	}

	query := `
		INSERT INTO slots (id, day, tracking_number, carrier, location, dt_from, dt_to, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			day = excluded.day,
			tracking_number = excluded.tracking_number,
			carrier = excluded.carrier,
			location = excluded.location,
			dt_from = excluded.dt_from,
			dt_to = excluded.dt_to,
			color = excluded.color
	`

	_, err := s.db.ExecContext(ctx, query,
		slot.ID,
		dayOf(slot.DateTimeFrom),
		slot.TrackingNumber,
		slot.Carrier,
		slot.Location,
		slot.DateTimeFrom,
		slot.DateTimeTo,
		nullable(slot.Color),
	)
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", slot.ID, err)
	}

	return nil
}

// DeleteSlot removes a slot by id.
func (s *SQLite) DeleteSlot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting slot %s: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("deleting slot %s: %w", id, ErrNotFound)
	}

	return nil
}

// Days returns the distinct days with at least one slot, newest first.
func (s *SQLite) Days(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT day FROM slots ORDER BY day DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}

	return days, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// dayOf extracts the date portion of a DATE"T"HH:mm:ss string.
func dayOf(dateTime string) string {
	for i := 0; i < len(dateTime); i++ {
		if dateTime[i] == 'T' {
			return dateTime[:i]
		}
	}
	return dateTime
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
