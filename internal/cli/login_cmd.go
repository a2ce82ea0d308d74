package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ptr/internal/cli/formatter"
	"github.com/alexanderramin/ptr/internal/config"
)

func newLoginCmd(app *App) *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and save the password to the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.connect(); err != nil {
				return err
			}
			if err := app.Session.Login(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", formatter.Bold(app.Settings.User))

			if noStore || app.password == "" {
				return nil
			}
			if err := config.StorePassword(app.Settings.User, app.password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Password saved to the system keyring."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "Verify only; do not touch the keyring")

	return cmd
}
