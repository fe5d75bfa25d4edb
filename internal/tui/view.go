package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jgurria/dockplan/internal/timeline"
)

// View renders the day board: a title, an hour ruler, one track row per
// location, and a footer with status and help.
func (m Model) View() string {
	if m.width <= 0 {
		return "Loading..."
	}

	rows := []string{
		m.renderTitle(),
		m.renderRuler(),
	}
	for _, loc := range m.rowNames() {
		rows = append(rows, m.renderRow(loc))
	}
	rows = append(rows, "", m.renderFooter(), m.renderHelp())

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderTitle() string {
	label := m.engine.TimeRangeLabel()
	title := m.day
	if label != "" {
		title += "  " + label
	}
	if m.loading {
		title += "  (loading)"
	}
	return m.styles.TitleStyle.Render(" " + title)
}

func (m Model) renderRuler() string {
	gutter := strings.Repeat(" ", labelWidth)
	return m.styles.RulerStyle.Render(gutter + rulerLine(m.trackWidth()))
}

// renderRow renders a location label and its marked track.
func (m Model) renderRow(loc string) string {
	label := m.styles.RowLabelStyle.Render(fitLabel(loc, labelWidth))
	return label + m.renderTrack(loc)
}

// renderTrack composes the background (empty, non-working, now line)
// and the slot segments for one location, wrapping everything in the
// hit-testing zones the gesture layer reads back.
func (m Model) renderTrack(loc string) string {
	trackW := m.trackWidth()
	board := m.engine.Board()

	nonwork := make([]bool, trackW)
	var spans []timeline.Span
	if board != nil {
		spans = board.NonWorking[loc]
	}
	if spans == nil {
		spans = timeline.NonWorkingSpans(m.config.HoursMap()[loc])
	}
	for _, sp := range spans {
		start, w := cellsFromPct(sp.LeftPct, sp.WidthPct, trackW)
		for c := start; c < start+w; c++ {
			nonwork[c] = true
		}
	}

	nowCol := -1
	if pct := m.engine.NowPct(); pct != timeline.NowHidden {
		nowCol = int(pct / 100 * float64(trackW))
		if nowCol >= trackW {
			nowCol = trackW - 1
		}
	}

	type segment struct {
		start, end int // end exclusive
		sv         *timeline.SlotView
	}
	var segs []segment
	if board != nil {
		for _, sv := range board.Slots[loc] {
			start, w := cellsFromPct(sv.LeftPct, sv.WidthPct, trackW)
			segs = append(segs, segment{start: start, end: start + w, sv: sv})
		}
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].start < segs[j].start })

	var sb strings.Builder
	pos := 0
	for _, g := range segs {
		if g.end > trackW {
			g.end = trackW
		}
		if g.start < pos {
			g.start = pos
		}
		if g.start >= g.end {
			continue
		}
		if g.start > pos {
			sb.WriteString(m.renderGap(pos, g.start, nonwork, nowCol))
		}

		label := fitLabel(g.sv.Raw.TrackingNumber, g.end-g.start)
		style := m.styles.SlotStyle(g.sv.Color, g.sv.Invalid, g.sv.Live, g.sv.ID == m.selectedID)
		sb.WriteString(m.zones.Mark(slotZoneID(g.sv.ID), style.Render(label)))
		pos = g.end
	}
	if pos < trackW {
		sb.WriteString(m.renderGap(pos, trackW, nonwork, nowCol))
	}

	return m.zones.Mark(trackZoneID(loc), sb.String())
}

// renderGap renders empty track cells [from, to), grouping runs with
// the same background and dropping the now line in where it falls.
func (m Model) renderGap(from, to int, nonwork []bool, nowCol int) string {
	var sb strings.Builder
	runStart := from
	flush := func(end int, isNonWork bool) {
		if end <= runStart {
			return
		}
		style := m.styles.TrackStyle
		if isNonWork {
			style = m.styles.NonWorkStyle
		}
		sb.WriteString(style.Render(strings.Repeat(" ", end-runStart)))
		runStart = end
	}

	for c := from; c < to; c++ {
		if c == nowCol {
			flush(c, nonwork[runStart])
			sb.WriteString(m.styles.NowLineStyle.Render("│"))
			runStart = c + 1
			continue
		}
		if nonwork[c] != nonwork[runStart] {
			flush(c, nonwork[runStart])
		}
	}
	// runStart lands past the gap when the now line fills the last cell.
	if runStart < to {
		flush(to, nonwork[runStart])
	}
	return sb.String()
}

func (m Model) renderFooter() string {
	if m.mode == ModeEdit {
		return m.styles.StatusStyle.Render(" tracking: ") + m.editInput.View()
	}
	if w := m.engine.CreationWarning(); w != nil {
		return m.styles.WarningStyle.Render(" " + w.Message + " ")
	}
	if m.statusMsg != "" {
		if m.err != nil {
			return m.styles.ErrorStyle.Render(" " + m.statusMsg)
		}
		return m.styles.StatusStyle.Render(" " + m.statusMsg)
	}
	return m.styles.StatusStyle.Render("")
}

func (m Model) renderHelp() string {
	help := " drag: move • edges: resize • drag empty track: create • ←/→: day • t: today • e: edit • d: delete • q: quit"
	if m.mode == ModeEdit {
		help = " enter: save • esc: cancel"
	}
	// Wide help lines get cut rather than wrapped by the terminal.
	return m.styles.HelpStyle.Render(ansi.Truncate(help, m.width, "…"))
}

// trackWidth returns the cell width of every track row.
func (m Model) trackWidth() int {
	w := m.width - labelWidth - 1
	if w < 24 {
		w = 24
	}
	return w
}

// rulerLine produces the hour marks for a track of the given width.
func rulerLine(trackW int) string {
	cells := []byte(strings.Repeat(" ", trackW))
	for h := 0; h < 24; h += 3 {
		col := h * 60 * trackW / timeline.MinutesPerDay
		label := fmt.Sprintf("%02d", h)
		if col+len(label) <= trackW {
			copy(cells[col:], label)
		}
	}
	return string(cells)
}

// cellsFromPct converts track percentages to a cell range. Width is
// floored at one cell so short slots stay visible and grabbable.
func cellsFromPct(leftPct, widthPct float64, trackW int) (start, width int) {
	start = int(leftPct/100*float64(trackW) + 0.5)
	width = int(widthPct/100*float64(trackW) + 0.5)
	if width < 1 {
		width = 1
	}
	if start < 0 {
		start = 0
	}
	if start > trackW-1 {
		start = trackW - 1
	}
	if start+width > trackW {
		width = trackW - start
	}
	return start, width
}

// fitLabel truncates or pads a label to exactly width cells.
func fitLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
