// Package export serialises consolidated palettes for other tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jmylchreest/brandtint/internal/colour"
	"github.com/jmylchreest/brandtint/internal/palette"
	"github.com/jmylchreest/brandtint/internal/version"
)

// Document is the JSON export of one consolidated palette.
type Document struct {
	Source    string          `json:"source,omitempty"`
	Generator string          `json:"generator"`
	Colors    []palette.Entry `json:"colors"`
	Summary   palette.Counts  `json:"summary"`
}

// JSON writes the palette as an indented JSON document.
func JSON(w io.Writer, source string, entries []palette.Entry) error {
	if entries == nil {
		entries = []palette.Entry{}
	}
	doc := Document{
		Source:    source,
		Generator: "brandtint/" + version.Version,
		Colors:    entries,
		Summary:   palette.Summary(entries),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	return nil
}

// UnitRGB is a colour with channels in 0..1, the form design tools expect.
type UnitRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// HexToUnitRGB maps a #rrggbb hex string to channels in 0..1, rounded to
// four decimals. Alpha is never part of the canonical hex.
func HexToUnitRGB(hex string) (UnitRGB, bool) {
	c, err := colour.Parse(hex)
	if err != nil {
		return UnitRGB{}, false
	}
	return UnitRGB{
		R: unit(c.R),
		G: unit(c.G),
		B: unit(c.B),
	}, true
}

func unit(v int) float64 {
	return math.Round(float64(v)/255*10000) / 10000
}

// Token is a named colour for a design tool.
type Token struct {
	Name  string  `json:"name"`
	Hex   string  `json:"hex"`
	Color UnitRGB `json:"color"`
}

// Tokens converts entries into design tokens. Entries whose hex is not a
// colour (identity fallbacks) are returned separately as skipped.
func Tokens(entries []palette.Entry) (tokens []Token, skipped []palette.Entry) {
	tokens = make([]Token, 0, len(entries))
	names := make(map[string]int)

	for _, e := range entries {
		rgb, ok := HexToUnitRGB(e.Hex)
		if !ok {
			skipped = append(skipped, e)
			continue
		}
		tokens = append(tokens, Token{
			Name:  tokenName(e, len(tokens), names),
			Hex:   e.Hex,
			Color: rgb,
		})
	}
	return tokens, skipped
}

// tokenName derives a name from the first label, falling back to a
// positional name. Repeated names get a numeric suffix.
func tokenName(e palette.Entry, pos int, seen map[string]int) string {
	name := strings.TrimSpace(strings.Split(e.Label, ",")[0])
	name = strings.TrimLeft(name, "-")
	if name == "" {
		name = fmt.Sprintf("color-%d", pos+1)
	}

	seen[name]++
	if n := seen[name]; n > 1 {
		return fmt.Sprintf("%s-%d", name, n)
	}
	return name
}

// DesignTokens writes the token list as indented JSON.
func DesignTokens(w io.Writer, tokens []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tokens); err != nil {
		return fmt.Errorf("failed to encode design tokens: %w", err)
	}
	return nil
}
