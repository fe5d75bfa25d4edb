// Package store provides persistence for dock appointment slots.
package store

import (
	"context"
	"errors"

	"github.com/jgurria/dockplan/internal/timeline"
)

// ErrNotFound is returned when a slot id does not exist.
var ErrNotFound = errors.New("slot not found")

// Repository is the persistence boundary the board talks to.
type Repository interface {
	// SlotsForDay returns all slots whose start falls on the given day
	// ("YYYY-MM-DD"), ordered by location then start time.
	SlotsForDay(ctx context.Context, day string) ([]timeline.Slot, error)
	// SaveSlot inserts or replaces a slot by id.
	SaveSlot(ctx context.Context, s timeline.Slot) error
	// DeleteSlot removes a slot. Returns ErrNotFound if the id is
	// unknown.
	DeleteSlot(ctx context.Context, id string) error
	// Days returns the distinct days with at least one slot, newest
	// first.
	Days(ctx context.Context) ([]string, error)
	Close() error
}
