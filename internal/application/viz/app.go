package viz

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/presentation/formatter"
	"github.com/penwyp/go-release-viz/internal/presentation/interaction"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/spf13/afero"
)

// maxCellWidth caps table cells in display columns
const maxCellWidth = 40

// App coordinates loading, layout and output for the release-viz commands
type App struct {
	config *Config
	fs     afero.Fs
	stdout io.Writer

	clock  *util.TimeProvider
	style  formatter.Style
	loader *Loader

	// Terminal hooks, replaced in tests
	termSize    func() (int, int)
	newKeyboard func() (*interaction.KeyboardReader, error)
}

// NewApp validates the config and prepares the components it needs
func NewApp(config *Config, fs afero.Fs, stdout io.Writer) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	clock, err := util.NewTimeProvider(config.Timezone)
	if err != nil {
		return nil, err
	}
	if !config.Now.IsZero() {
		clock.Pin(config.Now)
	}

	style, err := LoadStyle(fs, config.StyleFile)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      config,
		fs:          fs,
		stdout:      stdout,
		clock:       clock,
		style:       style,
		loader:      NewLoader(fs, config.Selector, config.ReleaseOptions(clock.Location())),
		termSize:    layout.SharedSizer().TerminalSize,
		newKeyboard: interaction.NewKeyboardReader,
	}, nil
}

// Now returns the instant used for lifecycle classification
func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Render loads the input and writes it in the configured format
func (a *App) Render() error {
	collection, err := a.loader.Load(a.config.Input)
	if err != nil {
		return err
	}
	return a.renderCollection(collection)
}

func (a *App) renderCollection(collection *release.Collection) error {
	var buf bytes.Buffer
	now := a.Now()

	switch a.config.Format {
	case FormatTable:
		rows := formatter.Rows(collection, now)
		if err := formatter.NewTableFormatter(maxCellWidth, a.config.Color).Format(&buf, rows); err != nil {
			return err
		}
	case FormatCSV:
		if err := formatter.NewCSVFormatter().Format(&buf, formatter.Rows(collection, now)); err != nil {
			return err
		}
	default:
		chart := NewChart(collection, a.Now)
		result := chart.Attach(a.config.Width, a.config.Height)
		if a.config.Format == FormatJSON {
			if err := formatter.NewJSONFormatter().Format(&buf, result, now); err != nil {
				return err
			}
		} else if err := formatter.NewSVGFormatter(a.style).Format(&buf, result); err != nil {
			return err
		}
	}

	return a.emit(buf.Bytes())
}

// emit writes a finished document to the output file or stdout
func (a *App) emit(data []byte) error {
	if a.config.WritesStdout() {
		_, err := a.stdout.Write(data)
		return err
	}

	if err := a.fs.MkdirAll(filepath.Dir(a.config.Output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(a.fs, a.config.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	util.LogInfo("output written",
		util.F("path", a.config.Output),
		util.F("format", a.config.Format),
		util.F("bytes", len(data)))
	return nil
}
