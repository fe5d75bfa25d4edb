package timeline

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2026-03-14T00:00", 0},
		{"2026-03-14T00:30", 30},
		{"2026-03-14T09:00:00", 540},
		{"2026-03-14T14:15:30", 855},
		{"2026-03-14T23:59", 1439},
		// Lenient policy: malformed input maps to midnight.
		{"", 0},
		{"2026-03-14", 0},
		{"garbage", 0},
		{"2026-03-14T9:00", 0},
		{"2026-03-14Tab:cd", 0},
		{"2026-03-14T12", 0},
	}
	for _, tt := range tests {
		got := ParseMinutes(tt.input)
		if got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestToDateTime(t *testing.T) {
	tests := []struct {
		base    string
		minutes int
		want    string
	}{
		{"2026-03-14T09:00:00", 0, "2026-03-14T00:00:00"},
		{"2026-03-14T09:00:00", 570, "2026-03-14T09:30:00"},
		{"2026-03-14", 1439, "2026-03-14T23:59:00"},
		{"2026-03-14", 1440, "2026-03-14T24:00:00"},
	}
	for _, tt := range tests {
		got := ToDateTime(tt.base, tt.minutes)
		if got != tt.want {
			t.Errorf("ToDateTime(%q, %d) = %q, want %q", tt.base, tt.minutes, got, tt.want)
		}
	}
}

func TestToDateTime_RoundTrip(t *testing.T) {
	for mins := 0; mins < MinutesPerDay; mins += SnapStep {
		dt := ToDateTime("2026-03-14", mins)
		if got := ParseMinutes(dt); got != mins {
			t.Errorf("ParseMinutes(ToDateTime(%d)) = %d", mins, got)
		}
	}
}
