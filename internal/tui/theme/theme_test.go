package theme

import "testing"

func TestLoad_AllAvailable(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Errorf("Load(%q) failed: %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
		if th.Bg == "" || th.Fg == "" || th.Accent == "" || th.Danger == "" {
			t.Errorf("Load(%q) has empty core colors: %+v", name, th)
		}
	}
}

func TestLoad_UnknownFallsBack(t *testing.T) {
	th, err := Load("nonexistent")
	if err != nil {
		t.Fatalf("Load fallback failed: %v", err)
	}
	if th.Name != "frappe" {
		t.Errorf("fallback theme = %q, want frappe", th.Name)
	}
}

func TestLoad_EmptyDefaults(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if th.Name != "frappe" {
		t.Errorf("default theme = %q, want frappe", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("IsAvailable should be case-insensitive")
	}
	if IsAvailable("solarized") {
		t.Error("IsAvailable(solarized) = true, want false")
	}
}
