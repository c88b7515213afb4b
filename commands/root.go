package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"
	"github.com/penwyp/go-release-viz/internal/application/viz"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultLogFile = "~/.go-release-viz/logs/app.log"

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	// Logging related
	debug   bool
	logFile string

	// Input related
	input    string
	selector string

	// Collection related
	padding   int
	ascending bool
	now       string
	timezone  string
}

// options holds the flags of one command
type options struct {
	*globalOptions

	// Output related
	output  string
	format  string
	width   float64
	height  float64
	style   string
	noColor bool
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	global := &globalOptions{}
	opts := &options{globalOptions: global}

	rootCmd := &cobra.Command{
		Use:   "go-release-viz [flags]",
		Short: "Release lifecycle timeline renderer",
		Long: `go-release-viz draws the support timeline of a project's releases.

It reads a pipe table of versions with their release, active support end and
LTS end dates, and renders every release as active and LTS bars over a month
grid, with a marker for today.

The table may be a plain text file, the first table of a Markdown document, or
the text of an element in an HTML page (see --selector).

Examples:
  go-release-viz -i releases.md                           # SVG to stdout
  go-release-viz -i releases.md -o timeline.svg           # SVG to a file
  go-release-viz -i releases.md -f json --width 800       # Layout tree as JSON
  go-release-viz -i releases.md --now 2023-02-01          # Classify against a fixed day
  go-release-viz table -i releases.md                     # Releases as a table
  go-release-viz watch -i releases.md -o timeline.svg     # Re-render on every change
  go-release-viz preview -i releases.md                   # Draw in the terminal`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	// Input and collection configuration shared by every command
	rootCmd.PersistentFlags().StringVarP(&global.input, "input", "i", "",
		"Input document (.txt table, .md, .html)")
	rootCmd.PersistentFlags().StringVar(&global.selector, "selector", "",
		"Element holding the table in HTML inputs (default aio-release-viz)")
	rootCmd.PersistentFlags().IntVar(&global.padding, "padding", 3,
		"Months added before the first and after the last boundary")
	rootCmd.PersistentFlags().BoolVar(&global.ascending, "ascending", false,
		"List the oldest release first")
	rootCmd.PersistentFlags().StringVar(&global.now, "now", "",
		"Classify releases against this date instead of today (e.g., 2023-02-01)")
	rootCmd.PersistentFlags().StringVar(&global.timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false,
		"Enable debug mode (log to stderr)")
	rootCmd.PersistentFlags().StringVar(&global.logFile, "log-file", defaultLogFile,
		"Log file used when debug mode is off")

	addRenderFlags(rootCmd, opts)

	rootCmd.AddCommand(
		newTableCommand(global),
		newWatchCommand(global),
		newPreviewCommand(global),
	)
	return rootCmd
}

// addRenderFlags registers the chart output flags
func addRenderFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", viz.FormatSVG,
		"Output format (svg, json)")
	cmd.Flags().Float64Var(&opts.width, "width", 460,
		"Container width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 350,
		"Container height in pixels")
	cmd.Flags().StringVar(&opts.style, "style", "",
		"YAML style file overriding colors and font")
}

func runRender(cmd *cobra.Command, opts *options) error {
	if opts.format != viz.FormatSVG && opts.format != viz.FormatJSON {
		return fmt.Errorf("invalid format '%s': must be either 'svg' or 'json'", opts.format)
	}

	app, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	return app.Render()
}

// newApp initializes logging and builds the application from the flags
func newApp(cmd *cobra.Command, opts *options) (*viz.App, error) {
	if err := initLogging(cmd, opts); err != nil {
		return nil, err
	}

	config, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return viz.NewApp(config, afero.NewOsFs(), cmd.OutOrStdout())
}

func initLogging(cmd *cobra.Command, opts *options) error {
	if opts.debug {
		return util.InitLogger(util.LoggerOptions{
			Level:   "debug",
			Console: cmd.ErrOrStderr(),
		})
	}

	logFile := util.ExpandPath(opts.logFile)
	if err := util.EnsureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return util.InitLogger(util.LoggerOptions{
		Level: "info",
		File:  logFile,
	})
}

// buildConfig turns the flags into an application config
func buildConfig(opts *options) (*viz.Config, error) {
	if opts.input == "" {
		return nil, fmt.Errorf("an input document is required (--input)")
	}
	if opts.padding < 0 {
		return nil, fmt.Errorf("padding must not be negative, got %d", opts.padding)
	}

	config := &viz.Config{
		Input:         opts.input,
		Output:        opts.output,
		Format:        opts.format,
		PaddingMonths: opts.padding,
		SortAscending: opts.ascending,
		Selector:      opts.selector,
		Width:         opts.width,
		Height:        opts.height,
		Timezone:      opts.timezone,
		StyleFile:     opts.style,
		Color:         !opts.noColor && term.IsTerminal(int(os.Stdout.Fd())),
	}

	if opts.now != "" {
		provider, err := util.NewTimeProvider(opts.timezone)
		if err != nil {
			return nil, err
		}
		now, err := dateparse.ParseIn(opts.now, provider.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid --now date '%s': %w", opts.now, err)
		}
		config.Now = now
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func Execute() error {
	return NewRootCommand().Execute()
}
