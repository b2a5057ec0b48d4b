// Package colour parses CSS colour strings and converts them into canonical
// hex, rgb, lch and oklch representations.
package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupportedSyntax is wrapped by every ParseError.
var ErrUnsupportedSyntax = errors.New("unsupported colour syntax")

// ParseError reports a raw value that matches neither the hex nor the
// rgb()/rgba() grammar.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse colour %q: %v", e.Raw, ErrUnsupportedSyntax)
}

// Unwrap allows errors.Is(err, ErrUnsupportedSyntax).
func (e *ParseError) Unwrap() error {
	return ErrUnsupportedSyntax
}

// RGBA is a parsed colour. Channels are not range checked.
type RGBA struct {
	R, G, B int
	A       float64
	// HasA is set when the source carried an alpha component.
	HasA bool
}

// Translucent reports whether the colour has a defined alpha below 1.
func (c RGBA) Translucent() bool {
	return c.HasA && c.A < 1
}

// alpha returns a pointer to the alpha value, or nil when undefined.
func (c RGBA) alpha() *float64 {
	if !c.HasA {
		return nil
	}
	a := c.A
	return &a
}

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
)

// Parse converts a hex (#rgb, #rrggbb, #rrggbbaa) or rgb()/rgba() string into
// an RGBA value. Any other syntax returns a *ParseError.
func Parse(raw string) (RGBA, error) {
	value := strings.TrimSpace(raw)

	if m := hexPattern.FindStringSubmatch(value); m != nil {
		return parseHexDigits(m[1]), nil
	}

	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		return parseRGBFunc(raw, m)
	}

	return RGBA{}, &ParseError{Raw: raw}
}

// parseHexDigits expands and decodes hex digits already validated by hexPattern.
func parseHexDigits(digits string) RGBA {
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	c := RGBA{
		R: hexByte(digits[0:2]),
		G: hexByte(digits[2:4]),
		B: hexByte(digits[4:6]),
	}
	if len(digits) == 8 {
		c.A = float64(hexByte(digits[6:8])) / 255
		c.HasA = true
	}
	return c
}

func hexByte(s string) int {
	// Validated by hexPattern, cannot fail.
	v, _ := strconv.ParseUint(s, 16, 8) //nolint:errcheck
	return int(v)
}

// parseRGBFunc decodes the submatches of rgbPattern.
func parseRGBFunc(raw string, m []string) (RGBA, error) {
	var channels [3]int
	for i := range channels {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			// Only reachable for digit runs that overflow int.
			return RGBA{}, &ParseError{Raw: raw}
		}
		channels[i] = v
	}

	c := RGBA{R: channels[0], G: channels[1], B: channels[2]}
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return RGBA{}, &ParseError{Raw: raw}
		}
		c.A = a
		c.HasA = true
	}
	return c, nil
}
