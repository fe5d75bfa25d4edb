package timeline

import (
	"fmt"
	"strings"
)

// ParseMinutes extracts the time-of-day component of a date-time string
// formatted as DATE"T"HH:mm[:ss] and returns it as minutes from
// midnight. Malformed or empty input maps to 0: the engine never fails
// on bad time strings, it degrades to midnight.
func ParseMinutes(dateTime string) int {
	t := strings.IndexByte(dateTime, 'T')
	if t < 0 || len(dateTime) < t+6 {
		return 0
	}
	clock := dateTime[t+1:]
	if len(clock) < 5 || clock[2] != ':' {
		return 0
	}
	if !isDigits(clock[0:2]) || !isDigits(clock[3:5]) {
		return 0
	}
	hours := int(clock[0]-'0')*10 + int(clock[1]-'0')
	mins := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return hours*60 + mins
}

// ToDateTime combines the date portion of base with a minute-of-day
// count into DATE"T"HH:mm:00. minutes is expected pre-clamped to
// [0, 1440]; this function does not clamp.
func ToDateTime(base string, minutes int) string {
	date := base
	if t := strings.IndexByte(base, 'T'); t >= 0 {
		date = base[:t]
	}
	return fmt.Sprintf("%sT%02d:%02d:00", date, minutes/60, minutes%60)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
