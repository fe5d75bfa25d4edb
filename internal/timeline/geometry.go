package timeline

import "math"

// Rect is the pixel geometry of one location track, captured once at
// gesture start. The engine assumes the track does not resize while a
// gesture is in flight.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// RowLocator resolves which logical row and track rectangle sit under a
// pointer position. The host injects it; the engine never inspects the
// host's widget tree itself.
type RowLocator interface {
	RowAt(x, y int) (location string, track Rect, ok bool)
}

// PixelToMinutes converts a pointer X offset within a track to a
// snapped, clamped minute-of-day. A zero-width track contributes no
// movement instead of dividing by zero.
func PixelToMinutes(pointerX, trackLeft, trackWidth, step int) int {
	if trackWidth <= 0 || step <= 0 {
		return 0
	}
	ratio := float64(pointerX-trackLeft) / float64(trackWidth)
	steps := math.Round(ratio * float64(MinutesPerDay) / float64(step))
	return Clamp(int(steps)*step, 0, MinutesPerDay)
}

// DeltaMinutes converts a pointer X delta over a track width to a
// snapped minute delta. Zero-width tracks yield no movement.
func DeltaMinutes(deltaPx, trackWidth, step int) int {
	if trackWidth <= 0 || step <= 0 {
		return 0
	}
	steps := math.Round(float64(deltaPx) / float64(trackWidth) * float64(MinutesPerDay) / float64(step))
	return int(steps) * step
}

// MinutesToPercent scales a minute interval onto the 24h track as left
// and width percentages in [0, 100]. Width is floored to a
// MinRenderMinutes equivalent so zero-length ranges stay visible; the
// floor is a display adjustment only and must never influence committed
// minutes.
func MinutesToPercent(from, to int) (left, width float64) {
	span := to - from
	if span < MinRenderMinutes {
		span = MinRenderMinutes
	}
	left = float64(from) / MinutesPerDay * 100
	width = float64(span) / MinutesPerDay * 100
	return left, width
}

// Snap rounds a minute value to the nearest multiple of step.
func Snap(mins, step int) int {
	if step <= 0 {
		return mins
	}
	return int(math.Round(float64(mins)/float64(step))) * step
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
