package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jmylchreest/brandtint/internal/palette"
)

// Options controls palette rendering.
type Options struct {
	// Swatch prints a 24-bit colour block in front of every entry.
	Swatch bool
	// Color styles headings and confidence tiers.
	Color bool
	// LabelWidth wraps labels longer than this; zero disables wrapping.
	LabelWidth int
}

// styles groups the fatih/color printers used for one render call.
type styles struct {
	header *color.Color
	dim    *color.Color
	high   *color.Color
	medium *color.Color
	low    *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		header: color.New(color.Bold),
		dim:    color.New(color.FgHiBlack),
		high:   color.New(color.FgGreen, color.Bold),
		medium: color.New(color.FgYellow),
		low:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{s.header, s.dim, s.high, s.medium, s.low} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s styles) confidence(c palette.Confidence) string {
	switch c {
	case palette.High:
		return s.high.Sprint(c.String())
	case palette.Medium:
		return s.medium.Sprint(c.String())
	default:
		return s.low.Sprint(c.String())
	}
}

// Palette writes the entries as a table followed by a one-line summary.
func Palette(w io.Writer, entries []palette.Entry, opts Options) error {
	st := newStyles(opts.Color)

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, st.dim.Sprint("No colours found."))
		return err
	}

	headers := []string{"HEX", "RGB", "LCH", "OKLCH", "CONFIDENCE", "LABEL"}
	if opts.Swatch {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	if opts.LabelWidth > 0 {
		table.SetColumnMaxWidth(len(headers)-1, opts.LabelWidth)
	}

	for _, e := range entries {
		row := []string{e.Hex, e.RGB, e.LCH, e.OKLCH, st.confidence(e.Confidence), e.Label}
		if opts.Swatch {
			row = append([]string{Swatch(e.Hex, DefaultSwatchWidth)}, row...)
		}
		table.AddRow(row)
	}

	if _, err := io.WriteString(w, table.Render(func(s string) string { return st.header.Sprint(s) })); err != nil {
		return err
	}

	counts := palette.Summary(entries)
	_, err := fmt.Fprintln(w, st.dim.Sprintf("%d colours (%d high, %d medium, %d low confidence)",
		counts.Total(), counts.High, counts.Medium, counts.Low))
	return err
}

// Record writes one converted colour as aligned name/value lines, used by
// the convert command.
func Record(w io.Writer, raw string, fields [][2]string, opts Options) error {
	st := newStyles(opts.Color)

	title := st.header.Sprint(raw)
	if opts.Swatch {
		title = SwatchWithText(raw, "Aa", 6) + " " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "  %s %s\n", st.dim.Sprintf("%-6s", f[0]), f[1]); err != nil {
			return err
		}
	}
	return nil
}
