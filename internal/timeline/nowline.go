package timeline

import (
	"strings"
	"time"
)

// NowHidden is the sentinel position for a hidden now-indicator.
const NowHidden = -1.0

// NowPercent returns the current wall-clock position as a percentage of
// the 24h track, including fractional minutes from seconds, clamped to
// [0, 100]. It returns NowHidden when the indicator is disabled or the
// reference day is not the actual current day.
func NowPercent(referenceDay string, now time.Time, enabled bool) float64 {
	if !enabled {
		return NowHidden
	}
	date := referenceDay
	if t := strings.IndexByte(date, 'T'); t >= 0 {
		date = date[:t]
	}
	if date != now.Format("2006-01-02") {
		return NowHidden
	}

	mins := float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60
	pct := mins / MinutesPerDay * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
