package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/brandtint/internal/palette"
	"github.com/jmylchreest/brandtint/internal/render"
)

// outputFormat selects how results are written.
type outputFormat string

const (
	formatTable  outputFormat = "table"
	formatJSON   outputFormat = "json"
	formatTokens outputFormat = "tokens"
)

var (
	_ pflag.Value = (*outputFormat)(nil)
	_ pflag.Value = (*palette.Confidence)(nil)

	paletteFormats = []outputFormat{formatTable, formatJSON, formatTokens}
	convertFormats = []outputFormat{formatTable, formatJSON}
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(value string) error {
	parsed, err := parseFormat(value, paletteFormats)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *outputFormat) Type() string { return "format" }

// parseFormat validates a format name against the allowed set.
func parseFormat(value string, allowed []outputFormat) (outputFormat, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	names := make([]string, len(allowed))
	for i, f := range allowed {
		if string(f) == value {
			return f, nil
		}
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported format %q (expected one of: %s)", value, strings.Join(names, ", "))
}

// renderOptions decides whether swatches and styling go to out.
func renderOptions(out io.Writer, noSwatch bool, labelWidth int) render.Options {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = render.IsTerminal(f)
	}
	return render.Options{
		Swatch:     tty && !noSwatch,
		Color:      tty,
		LabelWidth: labelWidth,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
