// Package tui provides the terminal user interface for dockplan.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jgurria/dockplan/internal/config"
	"github.com/jgurria/dockplan/internal/store"
	"github.com/jgurria/dockplan/internal/timeline"
	"github.com/jgurria/dockplan/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // Editing the selected slot's tracking number
)

// saveQueue collects commits emitted by the board engine during a
// single Update pass. Shared by pointer so it survives model copies.
type saveQueue struct {
	slots []timeline.Slot
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   store.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Board engine and hit-testing
	engine *timeline.Engine
	zones  *zone.Manager

	// State
	day        string   // day on display, "YYYY-MM-DD"
	locations  []string // configured row order
	selectedID string   // last clicked slot
	mode       Mode
	loading    bool

	// Components
	editInput textinput.Model

	// Commits waiting to be persisted
	pending *saveQueue

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo store.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}

	day := cfg.Board.ReferenceDay
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}

	zones := zone.New()
	locations := cfg.LocationNames()
	pending := &saveQueue{}

	engine := timeline.New()
	engine.Initialize(timeline.Config{
		Hours:            cfg.HoursMap(),
		ReferenceDay:     day,
		TimeRangeLabel:   cfg.Board.TimeRangeLabel,
		ShowNowIndicator: cfg.Board.ShowNowIndicator,
		Locator:          &rowLocator{zones: zones, locations: locations},
		OnSlotChanged: func(s timeline.Slot) {
			pending.slots = append(pending.slots, s)
		},
	})

	editInput := textinput.New()
	editInput.Placeholder = "Tracking number"
	editInput.CharLimit = 64
	editInput.Width = 32

	return &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    NewStyles(t),
		engine:    engine,
		zones:     zones,
		day:       day,
		locations: locations,
		pending:   pending,
		editInput: editInput,
		loading:   true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadDay(m.repo, m.day), nowTick())
}

// Run starts the TUI.
func Run(repo store.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo store.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	model.engine.Dispose()
	model.zones.Close()
	return err
}

// rowNames returns the rows to render: configured locations first, then
// any locations only present in the loaded data.
func (m Model) rowNames() []string {
	names := append([]string(nil), m.locations...)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	if b := m.engine.Board(); b != nil {
		for _, loc := range b.Locations {
			if !seen[loc] {
				names = append(names, loc)
				seen[loc] = true
			}
		}
	}
	return names
}
