package tui

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/jgurria/dockplan/internal/timeline"
)

// Zone id prefixes for track rows and slot segments.
func trackZoneID(location string) string { return "track:" + location }
func slotZoneID(id string) string        { return "slot:" + id }

// rowLocator resolves pointer positions to location rows using the
// zones recorded by the last render. Row membership is decided by Y
// alone so a drag past the horizontal track edges still resolves; the
// engine clamps the time axis.
type rowLocator struct {
	zones     *zone.Manager
	locations []string
}

func (l *rowLocator) RowAt(x, y int) (string, timeline.Rect, bool) {
	_ = x
	for _, loc := range l.locations {
		z := l.zones.Get(trackZoneID(loc))
		if z.IsZero() {
			continue
		}
		if y < z.StartY || y > z.EndY {
			continue
		}
		return loc, timeline.Rect{
			Left:   z.StartX,
			Top:    z.StartY,
			Width:  z.EndX - z.StartX + 1,
			Height: z.EndY - z.StartY + 1,
		}, true
	}
	return "", timeline.Rect{}, false
}
