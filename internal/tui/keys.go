package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgurria/dockplan/internal/timeline"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if m.mode == ModeEdit {
		return m.handleEditKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "left":
		return m.gotoDay(shiftDay(m.day, -1))

	case "l", "right":
		return m.gotoDay(shiftDay(m.day, 1))

	case "t":
		return m.gotoDay(time.Now().Format("2006-01-02"))

	case "r":
		m.loading = true
		return m, loadDay(m.repo, m.day)

	case "d":
		if m.selectedID == "" {
			return m, nil
		}
		id := m.selectedID
		m.selectedID = ""
		return m, deleteSlot(m.repo, id)

	case "e":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		m.mode = ModeEdit
		m.editInput.SetValue(slot.TrackingNumber)
		m.editInput.CursorEnd()
		return m, m.editInput.Focus()

	case "esc":
		m.selectedID = ""
		return m, nil
	}

	return m, nil
}

// handleEditKeys handles keyboard input while the tracking number of
// the selected slot is being edited.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.editInput.Blur()
		return m, nil

	case "enter":
		m.mode = ModeNormal
		m.editInput.Blur()

		value := strings.TrimSpace(m.editInput.Value())
		slot, ok := m.selectedSlot()
		if value == "" || !ok || value == slot.TrackingNumber {
			return m, nil
		}

		slot.TrackingNumber = value
		committed := m.engine.Committed()
		for i := range committed {
			if committed[i].ID == slot.ID {
				committed[i] = slot
			}
		}
		m.engine.SetInputs(timeline.Inputs{
			Committed:        committed,
			Hours:            m.config.HoursMap(),
			ReferenceDay:     m.day,
			ShowNowIndicator: m.config.Board.ShowNowIndicator,
		})
		return m, saveSlot(m.repo, slot)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// selectedSlot resolves the current selection against committed data.
func (m Model) selectedSlot() (timeline.Slot, bool) {
	if m.selectedID == "" {
		return timeline.Slot{}, false
	}
	for _, s := range m.engine.Committed() {
		if s.ID == m.selectedID {
			return s, true
		}
	}
	return timeline.Slot{}, false
}

// gotoDay switches the board to another day and reloads it.
func (m Model) gotoDay(day string) (tea.Model, tea.Cmd) {
	if day == m.day {
		return m, nil
	}
	m.loading = true
	m.selectedID = ""
	return m, loadDay(m.repo, day)
}

// shiftDay moves a "YYYY-MM-DD" day by the given number of days.
// Unparseable input is returned unchanged.
func shiftDay(day string, days int) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
