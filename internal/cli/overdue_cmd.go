package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ptr/internal/cli/formatter"
)

func newOverdueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List the weeks the backend is still waiting on",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.connect(); err != nil {
				return err
			}
			overdue, err := app.Overdue.OverdueWeeks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverdue(sortedDates(overdue)))
			return nil
		},
	}
}
