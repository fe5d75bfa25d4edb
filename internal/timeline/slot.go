// Package timeline implements the interaction engine for the dock-door
// day board: time/geometry conversion, conflict and working-hours
// checking, view-model projection, and the drag/resize/create gesture
// state machine. The package is host-agnostic; a shell (TUI, web, test)
// feeds it pointer events and consumes its projections and signals.
package timeline

const (
	// SnapStep is the grid granularity in minutes. Every interval edge
	// the engine produces is a multiple of this.
	SnapStep = 30

	// MinSpanMinutes is the smallest committed slot span.
	MinSpanMinutes = 30

	// MinRenderMinutes is the rendering floor for slot width. It never
	// feeds back into committed minutes.
	MinRenderMinutes = 5

	// MinutesPerDay is the length of the 24h track.
	MinutesPerDay = 1440
)

// Slot is a committed appointment on a location row. The host owns the
// canonical slot list; the engine receives snapshots and hands back
// modified or created copies through the change callback.
type Slot struct {
	ID             string
	TrackingNumber string // display only, never validated
	Carrier        string // display only, never validated
	Location       string
	DateTimeFrom   string // "YYYY-MM-DDTHH:mm[:ss]"
	DateTimeTo     string
	Color          string // optional explicit color, hex
}

// FromMinutes returns the slot's start as minutes from midnight.
func (s Slot) FromMinutes() int {
	return ParseMinutes(s.DateTimeFrom)
}

// ToMinutes returns the slot's end as minutes from midnight.
func (s Slot) ToMinutes() int {
	return ParseMinutes(s.DateTimeTo)
}

// HoursEntry is one working-hours window for a location, as
// minute-of-day markers in "HH:mm" form.
//
// Weekday is accepted from host data but not consulted: only the first
// entry per location is honored today. Weekday-scoped windows are an
// extension point, not an implemented feature.
type HoursEntry struct {
	Start   string
	End     string
	Weekday string
}

// HoursMap maps a location to its configured working-hours entries.
// A location with no entries is treated as always working.
type HoursMap map[string][]HoursEntry
