package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/snapshot"
)

func newDumpCmd(app *App) *cobra.Command {
	var query string
	var presses []string
	var clicks []string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the widget state as JSON",
		Long: `Print the state of every widget as JSON.

Keys given with --press and elements given with --click are applied first,
clicks before presses. --query selects part of the document with a gjson
path such as "widgets.fruits.value" or "widgets.fruits.items.#(selected==true)#.id".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := app.load()
			if err != nil {
				return err
			}
			for _, id := range clicks {
				if _, err := wb.Click(id, key.ModNone); err != nil {
					return err
				}
			}
			for _, spec := range presses {
				if _, err := wb.Press(spec); err != nil {
					return err
				}
			}

			doc, err := snapshot.Take(wb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if query != "" {
				raw, err := snapshot.Query(doc, query)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, raw)
				return nil
			}
			if pretty {
				doc = snapshot.Pretty(doc)
				_, err = out.Write(doc)
				return err
			}
			fmt.Fprintln(out, string(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "gjson path to print instead of the whole document")
	cmd.Flags().StringArrayVar(&presses, "press", nil, "Key to press before dumping (repeatable)")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Element id to click before dumping (repeatable)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}
