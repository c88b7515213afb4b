package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-release-viz/internal/application/viz"
	"github.com/spf13/cobra"
)

func newWatchCommand(global *globalOptions) *cobra.Command {
	opts := &options{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the chart whenever the input changes",
		Long: `Renders the chart once, then again after every change to the input
document. A change that cannot be parsed is logged and the previous output is
kept. Stops on Ctrl+C.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" || opts.output == "-" {
				return fmt.Errorf("watch needs an output file (--output)")
			}
			if opts.format != viz.FormatSVG && opts.format != viz.FormatJSON {
				return fmt.Errorf("invalid format '%s': must be either 'svg' or 'json'", opts.format)
			}

			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s, writing %s (Ctrl+C to stop)\n", opts.input, opts.output)
			return app.Watch(ctx)
		},
	}

	addRenderFlags(cmd, opts)
	return cmd
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
