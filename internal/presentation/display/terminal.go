package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-release-viz/internal/presentation/layout"
	"github.com/penwyp/go-release-viz/internal/util"
)

// TerminalDisplay draws layout results in the terminal for the preview command
type TerminalDisplay struct {
	out               io.Writer
	color             bool
	inAlternateScreen bool
	previousScreen    string
}

func NewTerminalDisplay(out io.Writer, color bool) *TerminalDisplay {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDisplay{out: out, color: color}
}

// ContainerSize converts a terminal size into the chart container size in pixels.
// Two rows are kept for the status line.
func ContainerSize(cols, rows int) (float64, float64) {
	return float64(cols) * PixelsPerColumn, float64(max(rows-2, 1)) * PixelsPerRow
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Fprint(td.out, "\033[?1049h")
		fmt.Fprint(td.out, util.HideCursor)
		fmt.Fprint(td.out, util.ClearScreen)
		fmt.Fprint(td.out, util.MoveCursorHome)
		td.inAlternateScreen = true
		td.previousScreen = ""
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen)
		fmt.Fprint(td.out, util.MoveCursorHome)
		fmt.Fprint(td.out, util.ShowCursor)
		fmt.Fprint(td.out, "\033[?1049l")
		td.inAlternateScreen = false
	}
}

// Draw rasterizes the result to a cols x rows screen with a status line on
// top. An unchanged screen is not redrawn.
func (td *TerminalDisplay) Draw(result *layout.Result, cols, rows int, status string) error {
	canvas := NewCanvas(cols, max(rows-2, 1))
	if err := canvas.Draw(result); err != nil {
		return err
	}

	var screen strings.Builder
	screen.WriteString(util.TruncateToWidth(status, cols))
	screen.WriteString("\n\n")
	if err := canvas.Render(&screen, td.color); err != nil {
		return err
	}

	content := screen.String()
	if content == td.previousScreen {
		return nil
	}
	td.previousScreen = content

	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen)
		fmt.Fprint(td.out, util.MoveCursorHome)
		// The keyboard reader puts the terminal in raw mode, which drops the
		// carriage return from a bare newline
		content = strings.ReplaceAll(content, "\n", "\r\n")
	}
	_, err := io.WriteString(td.out, content)
	return err
}
