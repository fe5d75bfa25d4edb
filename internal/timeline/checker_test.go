package timeline

import "testing"

// testSlot builds a committed slot on the given location for checker
// and view-model tests.
func testSlot(id, location string, from, to int) Slot {
	return Slot{
		ID:             id,
		TrackingNumber: "TRK-" + id,
		Carrier:        "ACME",
		Location:       location,
		DateTimeFrom:   ToDateTime("2026-03-14", from),
		DateTimeTo:     ToDateTime("2026-03-14", to),
	}
}

func TestChecker_HasConflict(t *testing.T) {
	slots := []Slot{
		testSlot("a", "R1", 0, 60),
		testSlot("b", "R1", 60, 120),
		testSlot("c", "R2", 0, 1440),
	}
	c := NewChecker(slots, nil)

	tests := []struct {
		name     string
		location string
		from, to int
		exclude  string
		want     bool
	}{
		// Half-open semantics: touching intervals do not conflict.
		{"touching start", "R1", 120, 180, "", false},
		{"touching both", "R1", 60, 60, "", false},
		{"one minute over", "R1", 0, 61, "x", true},
		{"contained", "R1", 70, 80, "", true},
		{"containing", "R1", 0, 180, "", true},
		{"other row is free", "R3", 0, 1440, "", false},
		{"row membership matters", "R1", 200, 300, "", false},
		{"excluded self", "R1", 0, 60, "a", false},
		{"excluded but other overlaps", "R1", 30, 90, "a", true},
	}
	for _, tt := range tests {
		got := c.HasConflict(tt.location, tt.from, tt.to, tt.exclude)
		if got != tt.want {
			t.Errorf("%s: HasConflict(%q, %d, %d, %q) = %v, want %v",
				tt.name, tt.location, tt.from, tt.to, tt.exclude, got, tt.want)
		}
	}
}

func TestChecker_HasConflict_Symmetric(t *testing.T) {
	hours := HoursMap{}
	a := testSlot("a", "R1", 0, 61)
	b := testSlot("b", "R1", 60, 120)

	c1 := NewChecker([]Slot{a}, hours)
	c2 := NewChecker([]Slot{b}, hours)
	if !c1.HasConflict("R1", 60, 120, "") {
		t.Error("[60,120) should conflict with committed [0,61)")
	}
	if !c2.HasConflict("R1", 0, 61, "") {
		t.Error("[0,61) should conflict with committed [60,120)")
	}
}

func TestChecker_OutsideWorkingHours(t *testing.T) {
	hours := HoursMap{
		"R1": {{Start: "06:00", End: "22:00"}},
		"R2": {{Start: "00:00", End: "24:00"}},
	}
	c := NewChecker(nil, hours)

	tests := []struct {
		name     string
		location string
		from, to int
		want     bool
	}{
		{"inside window", "R1", 540, 600, false},
		{"touching both bounds", "R1", 360, 1320, false},
		{"from before start", "R1", 330, 600, true},
		{"to after end", "R1", 540, 1350, true},
		{"entirely before", "R1", 0, 120, true},
		{"full-day window", "R2", 0, 1440, false},
		// No configured entries means always working.
		{"unknown location", "R9", 0, 1440, false},
	}
	for _, tt := range tests {
		got := c.OutsideWorkingHours(tt.location, tt.from, tt.to)
		if got != tt.want {
			t.Errorf("%s: OutsideWorkingHours(%q, %d, %d) = %v, want %v",
				tt.name, tt.location, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestChecker_OnlyFirstEntryHonored(t *testing.T) {
	hours := HoursMap{
		"R1": {
			{Start: "06:00", End: "12:00"},
			{Start: "14:00", End: "22:00", Weekday: "saturday"},
		},
	}
	c := NewChecker(nil, hours)

	if c.OutsideWorkingHours("R1", 420, 600) {
		t.Error("07:00-10:00 should be inside the first window")
	}
	if !c.OutsideWorkingHours("R1", 900, 1200) {
		t.Error("15:00-20:00 is only covered by the ignored second entry")
	}
}

func TestChecker_CheckEvaluatesBothIndependently(t *testing.T) {
	slots := []Slot{testSlot("a", "R1", 540, 600)}
	hours := HoursMap{"R1": {{Start: "06:00", End: "22:00"}}}
	c := NewChecker(slots, hours)

	v := c.Check("R1", 300, 570, "")
	if !v.Conflict {
		t.Error("Check: want Conflict for overlap with slot a")
	}
	if !v.OutsideHours {
		t.Error("Check: want OutsideHours for 05:00 start")
	}
	if v.OK() {
		t.Error("Check: verdict with both violations must not be OK")
	}

	if !(Verdict{}).OK() {
		t.Error("empty verdict should be OK")
	}
}
