package viz

import (
	"fmt"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/data/parser"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
)

// Output formats
const (
	FormatSVG   = "svg"
	FormatJSON  = "json"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Config contains configuration for every release-viz command
type Config struct {
	// Input and output documents; an empty or "-" output means stdout
	Input  string
	Output string
	Format string

	// Collection settings
	PaddingMonths int
	SortAscending bool
	Selector      string

	// Container size in pixels
	Width  float64
	Height float64

	// Time settings; a zero Now follows the clock
	Timezone string
	Now      time.Time

	// Display settings
	StyleFile string
	Color     bool

	// Watch settings
	Debounce time.Duration
}

// NewConfig returns a config holding every default
func NewConfig() *Config {
	cfg := &Config{PaddingMonths: release.DefaultPaddingMonths}
	_ = cfg.Validate()
	return cfg
}

// Validate fills defaults and checks the configuration
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = FormatSVG
	}
	if c.Selector == "" {
		c.Selector = parser.DefaultSelector
	}
	if c.Width == 0 {
		c.Width = layout.BaseWidth
	}
	if c.Height == 0 {
		c.Height = layout.BaseHeight
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Debounce == 0 {
		c.Debounce = 200 * time.Millisecond
	}

	if c.PaddingMonths < 0 {
		return fmt.Errorf("padding must not be negative, got %d", c.PaddingMonths)
	}
	switch c.Format {
	case FormatSVG, FormatJSON, FormatTable, FormatCSV:
	default:
		return fmt.Errorf("unknown format %q (valid: svg, json, table, csv)", c.Format)
	}
	return nil
}

// ReleaseOptions returns the collection build options for the config
func (c *Config) ReleaseOptions(loc *time.Location) release.Options {
	return release.Options{
		PaddingMonths: c.PaddingMonths,
		SortAscending: c.SortAscending,
		Location:      loc,
	}
}

// WritesStdout reports whether output goes to stdout
func (c *Config) WritesStdout() bool {
	return c.Output == "" || c.Output == "-"
}
