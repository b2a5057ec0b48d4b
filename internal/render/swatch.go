package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/brandtint/internal/colour"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	// DefaultSwatchWidth is the number of columns a swatch occupies.
	DefaultSwatchWidth = 4
)

// Swatch returns a solid block of the given colour. Values that do not
// parse as a colour render as a centred question mark of the same width.
func Swatch(value string, width int) string {
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	c, err := colour.Parse(value)
	if err != nil {
		return centre("?", width)
	}

	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText renders text centred on the colour, in black or white
// depending on which reads better.
func SwatchWithText(value, text string, width int) string {
	if width <= 0 {
		width = len(text)
	}

	c, err := colour.Parse(value)
	if err != nil {
		return centre(text, width)
	}

	return bg(c) + fg(colour.ReadableOn(c)) + centre(text, width) + ansiReset
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func bg(c colour.RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c colour.RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// centre pads or truncates text to exactly width columns.
func centre(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
