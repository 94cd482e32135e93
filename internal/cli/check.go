package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the configuration and report widget state warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := app.load()
			if err != nil {
				return err
			}
			violations := wb.Validate()
			out := cmd.OutOrStdout()
			for _, v := range violations {
				fmt.Fprintln(out, v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%s: %w: %d", app.ConfigPath, ErrViolations, len(violations))
			}
			fmt.Fprintf(out, "%s: %d widgets ok\n", app.ConfigPath, len(wb.Widgets()))
			return nil
		},
	}
}
