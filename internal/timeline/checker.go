package timeline

// Verdict is the outcome of checking a candidate interval. Both checks
// are evaluated independently so callers can tell a conflict apart from
// an out-of-hours placement when wording a warning.
type Verdict struct {
	Conflict     bool
	OutsideHours bool
}

// OK reports whether the candidate may be committed.
func (v Verdict) OK() bool {
	return !v.Conflict && !v.OutsideHours
}

// Checker validates candidate intervals against a committed-slot
// snapshot and the configured working hours. It holds references only
// for the duration of one rebuild cycle.
type Checker struct {
	slots []Slot
	hours HoursMap
}

// NewChecker builds a Checker over the given snapshot.
func NewChecker(slots []Slot, hours HoursMap) *Checker {
	return &Checker{slots: slots, hours: hours}
}

// HasConflict reports whether any other slot on location overlaps
// [from, to) half-open: touching intervals do not conflict. The slot
// with excludeID is skipped so a gesture never collides with itself.
func (c *Checker) HasConflict(location string, from, to int, excludeID string) bool {
	for _, s := range c.slots {
		if s.ID == excludeID || s.Location != location {
			continue
		}
		otherFrom := s.FromMinutes()
		otherTo := s.ToMinutes()
		if to <= otherFrom || from >= otherTo {
			continue
		}
		return true
	}
	return false
}

// OutsideWorkingHours reports whether either bound of [from, to] falls
// outside the location's inclusive working window. A location with no
// configured entries is always working. Only the first entry per
// location is honored.
func (c *Checker) OutsideWorkingHours(location string, from, to int) bool {
	entries := c.hours[location]
	if len(entries) == 0 {
		return false
	}
	start := clockToMinutes(entries[0].Start)
	end := clockToMinutes(entries[0].End)
	return from < start || from > end || to < start || to > end
}

// Check evaluates both constraints for a candidate interval.
func (c *Checker) Check(location string, from, to int, excludeID string) Verdict {
	return Verdict{
		Conflict:     c.HasConflict(location, from, to, excludeID),
		OutsideHours: c.OutsideWorkingHours(location, from, to),
	}
}

// clockToMinutes converts "HH:mm" to minutes from midnight, with the
// same lenient policy as ParseMinutes: malformed input maps to 0.
func clockToMinutes(clock string) int {
	if len(clock) < 5 || clock[2] != ':' {
		return 0
	}
	if !isDigits(clock[0:2]) || !isDigits(clock[3:5]) {
		return 0
	}
	return int(clock[0]-'0')*600 + int(clock[1]-'0')*60 + int(clock[3]-'0')*10 + int(clock[4]-'0')
}
