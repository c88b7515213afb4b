package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"

	ClearScreen    = "\033[2J" // Clear entire screen
	MoveCursorHome = "\033[H"  // Move cursor to home position
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to at most width display cells, marking the cut with "…"
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// PadToWidth pads text with spaces to the given display width
func PadToWidth(text string, width int, leftAlign bool) string {
	actual := GetDisplayWidth(text)
	if actual >= width {
		return text
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// Colorize wraps text in an ANSI color sequence
func Colorize(text, color string) string {
	if color == "" {
		return text
	}
	return color + text + ColorReset
}
