package commands

import (
	"github.com/spf13/cobra"
)

func newPreviewCommand(global *globalOptions) *cobra.Command {
	opts := &options{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the chart in the terminal",
		Long: `Draws the chart in the terminal scaled to its size and redraws it when the
terminal is resized or the input changes.

Keys:
  q, Esc   quit
  s        toggle ascending/descending order
  + / -    add or remove a month of padding
  r        reload the input`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()
			return app.Preview(ctx)
		},
	}

	cmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"Disable colors")
	return cmd
}
