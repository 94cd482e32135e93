package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/listkit/internal/script"
)

func newRunCmd(app *App) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run <scenario.lua>",
		Short: "Run a Lua interaction scenario against the configured widgets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := app.load()
			if err != nil {
				return err
			}
			r := script.New(wb, script.WithLogger(app.logger()), script.WithTimeout(timeout))
			defer r.Close()

			err = r.RunFile(cmd.Context(), args[0])
			out := cmd.OutOrStdout()
			for _, f := range r.Failures() {
				fmt.Fprintf(out, "FAIL %s: %s\n", args[0], f)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ok %s: %d checks\n", args[0], r.Checks())
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", script.DefaultTimeout, "Abort the scenario after this long (0 disables)")
	return cmd
}
