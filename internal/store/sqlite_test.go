package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jgurria/dockplan/internal/timeline"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func sampleSlot(id, day, location, from, to string) timeline.Slot {
	return timeline.Slot{
		ID:             id,
		TrackingNumber: "TRK-" + id,
		Carrier:        "ACME Freight",
		Location:       location,
		DateTimeFrom:   day + "T" + from + ":00",
		DateTimeTo:     day + "T" + to + ":00",
	}
}

func TestSaveSlot_Insert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slot := sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00")
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	slots, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0] != slot {
		t.Errorf("round trip mismatch: got %+v, want %+v", slots[0], slot)
	}
}

func TestSaveSlot_EmptyID(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.SaveSlot(context.Background(), timeline.Slot{})
	if err == nil {
		t.Error("expected error for empty id")
	}
}

func TestSaveSlot_Upsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slot := sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00")
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	// Move it to another door and a later window.
	slot.Location = "Door 2"
	slot.DateTimeFrom = "2026-03-14T11:00:00"
	slot.DateTimeTo = "2026-03-14T12:30:00"
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot (update) failed: %v", err)
	}

	slots, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot after upsert, got %d", len(slots))
	}
	if slots[0].Location != "Door 2" || slots[0].DateTimeFrom != "2026-03-14T11:00:00" {
		t.Errorf("upsert did not replace: %+v", slots[0])
	}
}

func TestSaveSlot_UpsertMovesDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slot := sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00")
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	slot.DateTimeFrom = "2026-03-15T09:00:00"
	slot.DateTimeTo = "2026-03-15T10:00:00"
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot (move day) failed: %v", err)
	}

	old, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(old) != 0 {
		t.Errorf("expected no slots on old day, got %d", len(old))
	}

	moved, err := repo.SlotsForDay(ctx, "2026-03-15")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(moved) != 1 {
		t.Errorf("expected 1 slot on new day, got %d", len(moved))
	}
}

func TestSlotsForDay_Ordering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, slot := range []timeline.Slot{
		sampleSlot("c", "2026-03-14", "Door 2", "08:00", "09:00"),
		sampleSlot("a", "2026-03-14", "Door 1", "11:00", "12:00"),
		sampleSlot("b", "2026-03-14", "Door 1", "09:00", "10:00"),
		sampleSlot("d", "2026-03-15", "Door 1", "09:00", "10:00"),
	} {
		if err := repo.SaveSlot(ctx, slot); err != nil {
			t.Fatalf("SaveSlot(%s) failed: %v", slot.ID, err)
		}
	}

	slots, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}

	wantOrder := []string{"b", "a", "c"}
	if len(slots) != len(wantOrder) {
		t.Fatalf("expected %d slots, got %d", len(wantOrder), len(slots))
	}
	for i, id := range wantOrder {
		if slots[i].ID != id {
			t.Errorf("slots[%d].ID = %s, want %s", i, slots[i].ID, id)
		}
	}
}

func TestSlotsForDay_Empty(t *testing.T) {
	repo := newTestRepo(t)

	slots, err := repo.SlotsForDay(context.Background(), "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
}

func TestSaveSlot_ColorRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slot := sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00")
	slot.Color = "#8aadf4"
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	slots, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if slots[0].Color != "#8aadf4" {
		t.Errorf("Color = %q, want #8aadf4", slots[0].Color)
	}
}

func TestDeleteSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slot := sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00")
	if err := repo.SaveSlot(ctx, slot); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	if err := repo.DeleteSlot(ctx, "a"); err != nil {
		t.Fatalf("DeleteSlot failed: %v", err)
	}

	slots, err := repo.SlotsForDay(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots after delete, got %d", len(slots))
	}
}

func TestDeleteSlot_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteSlot(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDays(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, slot := range []timeline.Slot{
		sampleSlot("a", "2026-03-14", "Door 1", "09:00", "10:00"),
		sampleSlot("b", "2026-03-15", "Door 1", "09:00", "10:00"),
		sampleSlot("c", "2026-03-14", "Door 2", "11:00", "12:00"),
	} {
		if err := repo.SaveSlot(ctx, slot); err != nil {
			t.Fatalf("SaveSlot(%s) failed: %v", slot.ID, err)
		}
	}

	days, err := repo.Days(ctx)
	if err != nil {
		t.Fatalf("Days failed: %v", err)
	}

	want := []string{"2026-03-15", "2026-03-14"}
	if len(days) != len(want) {
		t.Fatalf("Days = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}
