package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jgurria/dockplan/internal/timeline"
)

func (a *App) addCmd() *cobra.Command {
	var (
		carrier  string
		location string
		date     string
		start    string
		end      string
	)

	cmd := &cobra.Command{
		Use:   "add [tracking-number]",
		Short: "Book a dock appointment",
		Long: `Book a new dock appointment without opening the board.

Example:
  dockplan add "1Z999AA10123456784" --carrier=UPS --location="Door 1" --date=2026-03-14 --start=09:00 --end=10:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			slot, err := buildSlot(args[0], carrier, location, date, start, end)
			if err != nil {
				return err
			}

			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			ctx := context.Background()
			existing, err := repo.SlotsForDay(ctx, date)
			if err != nil {
				return fmt.Errorf("loading day: %w", err)
			}
			checker := timeline.NewChecker(existing, a.config.HoursMap())
			v := checker.Check(slot.Location, slot.FromMinutes(), slot.ToMinutes(), "")
			if v.Conflict {
				return fmt.Errorf("appointment overlaps an existing slot on %s", slot.Location)
			}
			if v.OutsideHours {
				return fmt.Errorf("appointment is outside working hours on %s", slot.Location)
			}

			if err := repo.SaveSlot(ctx, slot); err != nil {
				return fmt.Errorf("saving appointment: %w", err)
			}

			fmt.Printf("Booked %s: %s on %s %s %s-%s\n",
				slot.ID[:8],
				slot.TrackingNumber,
				slot.Location,
				date,
				start,
				end,
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&carrier, "carrier", "", "Carrier name (required)")
	cmd.Flags().StringVar(&location, "location", "", "Dock door (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")

	_ = cmd.MarkFlagRequired("carrier")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// buildSlot validates the inputs and assembles a new appointment with
// times snapped to the booking grid.
func buildSlot(tracking, carrier, location, date, start, end string) (timeline.Slot, error) {
	if tracking == "" {
		return timeline.Slot{}, fmt.Errorf("tracking number must not be empty")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return timeline.Slot{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	from, err := clockMinutes(start)
	if err != nil {
		return timeline.Slot{}, fmt.Errorf("invalid start: %w", err)
	}
	to, err := clockMinutes(end)
	if err != nil {
		return timeline.Slot{}, fmt.Errorf("invalid end: %w", err)
	}

	from = timeline.Snap(from, timeline.SnapStep)
	to = timeline.Snap(to, timeline.SnapStep)
	if to-from < timeline.MinSpanMinutes {
		return timeline.Slot{}, fmt.Errorf("appointment must span at least %d minutes on the booking grid", timeline.MinSpanMinutes)
	}

	return timeline.Slot{
		ID:             uuid.NewString(),
		TrackingNumber: tracking,
		Carrier:        carrier,
		Location:       location,
		DateTimeFrom:   timeline.ToDateTime(date, from),
		DateTimeTo:     timeline.ToDateTime(date, to),
	}, nil
}

// clockMinutes parses strict HH:MM into minutes from midnight.
func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%q is not HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
