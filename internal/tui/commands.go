package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgurria/dockplan/internal/store"
	"github.com/jgurria/dockplan/internal/timeline"
)

// dayLoadedMsg carries a freshly loaded day snapshot.
type dayLoadedMsg struct {
	day   string
	slots []timeline.Slot
}

// slotSavedMsg confirms a persisted commit.
type slotSavedMsg struct {
	id string
}

// slotDeletedMsg confirms a deletion.
type slotDeletedMsg struct {
	id string
}

// errMsg carries a command failure.
type errMsg struct {
	err error
}

// nowTickMsg drives the periodic now-indicator recompute.
type nowTickMsg time.Time

// transientTickMsg is a one-shot wakeup scheduled for a transient
// signal expiry.
type transientTickMsg time.Time

// clearStatusMsg expires the footer status message.
type clearStatusMsg struct{}

func loadDay(repo store.Repository, day string) tea.Cmd {
	return func() tea.Msg {
		slots, err := repo.SlotsForDay(context.Background(), day)
		if err != nil {
			return errMsg{err: err}
		}
		return dayLoadedMsg{day: day, slots: slots}
	}
}

func saveSlot(repo store.Repository, s timeline.Slot) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveSlot(context.Background(), s); err != nil {
			return errMsg{err: err}
		}
		return slotSavedMsg{id: s.ID}
	}
}

func deleteSlot(repo store.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteSlot(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return slotDeletedMsg{id: id}
	}
}

func nowTick() tea.Cmd {
	return tea.Tick(timeline.NowIndicatorInterval, func(t time.Time) tea.Msg {
		return nowTickMsg(t)
	})
}

func transientTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return transientTickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
