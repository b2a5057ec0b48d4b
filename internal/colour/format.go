package colour

import (
	"fmt"
	"math"
	"strconv"
)

// Record is the canonical four-format representation of one colour.
// Hex never carries alpha; alpha only appears in the RGB, LCH and OKLCH strings.
type Record struct {
	Hex      string `json:"hex"`
	RGB      string `json:"rgb"`
	LCH      string `json:"lch"`
	OKLCH    string `json:"oklch"`
	HasAlpha bool   `json:"hasAlpha"`
}

// Convert parses raw and renders every canonical format.
// It returns false when raw is not a supported colour; see Resolve.
func Convert(raw string) (Record, bool) {
	c, err := Parse(raw)
	if err != nil {
		return Record{}, false
	}
	return FromRGBA(c), true
}

// Resolve is Convert with the identity fallback applied on failure, so
// callers never have to drop exotic CSS values such as named colours or
// gradients.
func Resolve(raw string) Record {
	if rec, ok := Convert(raw); ok {
		return rec
	}
	return Fallback(raw)
}

// Fallback returns the identity record for an unparseable value.
func Fallback(raw string) Record {
	return Record{
		Hex:   raw,
		RGB:   raw,
		LCH:   raw,
		OKLCH: raw,
	}
}

// FromRGBA renders a parsed colour into a Record.
func FromRGBA(c RGBA) Record {
	var alpha *float64
	if c.Translucent() {
		alpha = c.alpha()
	}

	return Record{
		Hex:      FormatHex(c),
		RGB:      FormatRGB(c),
		LCH:      FormatLCH(RGBToLCH(c.R, c.G, c.B), alpha),
		OKLCH:    FormatOKLCH(RGBToOKLCH(c.R, c.G, c.B), alpha),
		HasAlpha: c.Translucent(),
	}
}

// FormatHex returns the lowercase #rrggbb form, dropping alpha.
func FormatHex(c RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FormatRGB returns rgba(r, g, b, a) whenever the source carried an alpha
// component, including an opaque one, and rgb(r, g, b) otherwise.
func FormatRGB(c RGBA) string {
	if c.HasA {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatLCH renders lch(L% C H) with two decimals per component.
// A non-nil alpha below 1 is appended as "/ a".
func FormatLCH(lch LCH, alpha *float64) string {
	return fmt.Sprintf("lch(%s%% %s %s%s)",
		formatNumber(round(lch.L, 2)),
		formatNumber(round(lch.C, 2)),
		formatNumber(round(lch.H, 2)),
		alphaSuffix(alpha))
}

// FormatOKLCH renders oklch(L% C H). L is shown as a percentage with two
// decimals, C with three and H with two.
func FormatOKLCH(oklch OKLCH, alpha *float64) string {
	return fmt.Sprintf("oklch(%s%% %s %s%s)",
		formatNumber(math.Floor(oklch.L*10000+0.5)/100),
		formatNumber(round(oklch.C, 3)),
		formatNumber(round(oklch.H, 2)),
		alphaSuffix(alpha))
}

func alphaSuffix(alpha *float64) string {
	if alpha == nil || *alpha >= 1 {
		return ""
	}
	return " / " + formatNumber(*alpha)
}

// round rounds half up to the given number of decimal places.
func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(v*scale+0.5) / scale
}

// formatNumber prints the shortest decimal form without trailing zeros.
func formatNumber(v float64) string {
	if v == 0 {
		// Normalizes negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
