package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List days with booked appointments",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			days, err := repo.Days(context.Background())
			if err != nil {
				return fmt.Errorf("listing days: %w", err)
			}

			if len(days) == 0 {
				fmt.Println("No appointments booked.")
				return nil
			}

			for _, day := range days {
				fmt.Println(day)
			}
			return nil
		},
	}
}
