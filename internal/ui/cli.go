// Package ui provides the cobra command-line interface for dockplan.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgurria/dockplan/internal/config"
	"github.com/jgurria/dockplan/internal/store"
	"github.com/jgurria/dockplan/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   store.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo store.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "dockplan",
		Short: "A terminal scheduling board for dock-door appointments",
		Long: `Dockplan is a terminal scheduling board for warehouse dock doors.

It shows one day per screen with a track per door; drag appointments
to move them, drag their edges to resize, and drag across empty track
to book a new one. Appointments snap to a 30-minute grid and never
overlap on the same door.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to dockplan-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.daysCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dockplan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() (store.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := store.New(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return a.repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
