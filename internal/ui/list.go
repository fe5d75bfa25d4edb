package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments for a day",
		Long: `List all dock appointments booked on a day, grouped by door.

If no date is specified, lists today's appointments.`,
		Example: `  dockplan list
  dockplan list --date=2026-03-14`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
			}

			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			slots, err := repo.SlotsForDay(context.Background(), date)
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}

			if len(slots) == 0 {
				fmt.Printf("No appointments on %s.\n", date)
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("=== %s ===", date)))

			width := termWidth()
			var currentDoor string
			for _, s := range slots {
				if s.Location != currentDoor {
					fmt.Printf("\n%s\n", formatDoor(s.Location))
					currentDoor = s.Location
				}
				line := fmt.Sprintf("  %s  %s  %s  %s",
					formatWindow(fmt.Sprintf("%s-%s", clock(s.FromMinutes()), clock(s.ToMinutes()))),
					s.TrackingNumber,
					s.Carrier,
					formatMuted(s.ID[:shortIDLen(s.ID)]),
				)
				fmt.Println(truncate(line, width))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func shortIDLen(id string) int {
	if len(id) < 8 {
		return len(id)
	}
	return 8
}
