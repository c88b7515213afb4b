package commands

import (
	"fmt"

	"github.com/penwyp/go-release-viz/internal/application/viz"
	"github.com/spf13/cobra"
)

func newTableCommand(global *globalOptions) *cobra.Command {
	opts := &options{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the releases as a table",
		Long: `Prints every release in display order with its dates and its lifecycle
state (future, active, lts or unsupported) on the chosen day.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != viz.FormatTable && opts.format != viz.FormatCSV {
				return fmt.Errorf("invalid format '%s': must be either 'table' or 'csv'", opts.format)
			}
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return app.Render()
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", viz.FormatTable,
		"Output format (table, csv)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"Disable colored states")
	return cmd
}
