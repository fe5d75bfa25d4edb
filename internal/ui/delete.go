package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgurria/dockplan/internal/store"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [slot-id]",
		Short: "Delete an appointment",
		Long: `Delete a dock appointment by its id.

The id is shown by the list command; a unique prefix is enough when
deleting from the board's day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}

			err = repo.DeleteSlot(context.Background(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no appointment with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("deleting appointment: %w", err)
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
