package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgurria/dockplan/internal/timeline"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayLoadedMsg:
		m.day = msg.day
		m.loading = false
		m.selectedID = ""
		m.engine.SetInputs(timeline.Inputs{
			Committed:        msg.slots,
			Hours:            m.config.HoursMap(),
			ReferenceDay:     msg.day,
			ShowNowIndicator: m.config.Board.ShowNowIndicator,
		})
		return m, nil

	case slotSavedMsg:
		LogPersist("saved", msg.id)
		return m, nil

	case slotDeletedMsg:
		m.statusMsg = "Slot deleted"
		m.statusTime = time.Now().Add(3 * time.Second)
		m.loading = true
		return m, tea.Batch(loadDay(m.repo, m.day), clearStatusAfter(3*time.Second))

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, clearStatusAfter(5 * time.Second)

	case clearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case nowTickMsg:
		m.engine.Tick(time.Time(msg))
		return m, nowTick()

	case transientTickMsg:
		m.engine.Tick(time.Time(msg))
		return m, nil
	}

	return m, nil
}

// handleMouseMsg translates terminal mouse events into board gestures.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg)

	if m.mode == ModeEdit {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		target, ok := m.hitTest(msg)
		if !ok {
			m.selectedID = ""
			return m, nil
		}
		if st, isSlot := target.(timeline.SlotTarget); isSlot {
			m.selectedID = st.ID
		} else {
			m.selectedID = ""
		}
		m.engine.PointerDown(target, timeline.Pointer{X: msg.X, Y: msg.Y})
		return m, nil

	case tea.MouseActionMotion:
		m.engine.PointerMove(timeline.Pointer{X: msg.X, Y: msg.Y})
		return m, nil

	case tea.MouseActionRelease:
		m.engine.PointerUp(timeline.Pointer{X: msg.X, Y: msg.Y})
		return m, m.afterGesture()
	}

	return m, nil
}

// hitTest resolves a pointer position into a gesture target. Slots win
// over their underlying track; a press on a slot's first or last cell
// grabs the matching edge.
func (m Model) hitTest(msg tea.MouseMsg) (timeline.Target, bool) {
	if b := m.engine.Board(); b != nil {
		for _, loc := range b.Locations {
			for _, sv := range b.Slots[loc] {
				z := m.zones.Get(slotZoneID(sv.ID))
				if z.IsZero() || !z.InBounds(msg) {
					continue
				}
				grab := timeline.GrabBody
				// Edges need at least one body cell between them.
				if z.EndX-z.StartX >= 2 {
					switch msg.X {
					case z.StartX:
						grab = timeline.GrabStartEdge
					case z.EndX:
						grab = timeline.GrabEndEdge
					}
				}
				return timeline.SlotTarget{ID: sv.ID, Zone: grab}, true
			}
		}
	}

	for _, loc := range m.rowNames() {
		z := m.zones.Get(trackZoneID(loc))
		if !z.IsZero() && z.InBounds(msg) {
			return timeline.TrackTarget{Location: loc}, true
		}
	}

	return nil, false
}

// afterGesture drains pending commits into persistence commands and
// schedules wakeups for any transient signals the gesture started.
func (m Model) afterGesture() tea.Cmd {
	var cmds []tea.Cmd

	for _, s := range m.pending.slots {
		LogPersist("queued", s.ID)
		cmds = append(cmds, saveSlot(m.repo, s))
	}
	m.pending.slots = nil

	if m.engine.InvalidFlashID() != "" {
		cmds = append(cmds, transientTick(timeline.InvalidFlashDuration+50*time.Millisecond))
	}
	if m.engine.CreationWarning() != nil {
		cmds = append(cmds, transientTick(timeline.CreationWarningDuration+50*time.Millisecond))
	}

	return tea.Batch(cmds...)
}
