package brand

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/brandtint/internal/colour"
)

var (
	customPropertyRegex = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;{}]+);`)
	commentRegex        = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// colourFunctionRegex matches CSS colour functions the parser does not
	// convert. Their values still reach the palette through the fallback.
	colourFunctionRegex = regexp.MustCompile(`(?i)^(?:hsla?|hwb|lab|lch|oklab|oklch|color)\s*\(`)
)

// ParseStylesheet extracts colour-valued custom properties from CSS text.
// Names are returned with their leading "--". A property declared more than
// once keeps its first position and its last value. Declarations whose value
// is not a colour (lengths, var() references, fonts) are skipped.
func ParseStylesheet(css string) Properties {
	css = commentRegex.ReplaceAllString(css, "")

	var props Properties
	index := make(map[string]int)

	for _, match := range customPropertyRegex.FindAllStringSubmatch(css, -1) {
		name := "--" + match[1]
		value := strings.TrimSpace(match[2])
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))

		if !IsColourValue(value) {
			continue
		}

		if i, ok := index[name]; ok {
			props[i].Value = PropertyValue{Value: value}
			continue
		}
		index[name] = len(props)
		props = append(props, Property{Name: name, Value: PropertyValue{Value: value}})
	}

	return props
}

// IsColourValue reports whether a CSS value denotes a single colour, either
// one the parser converts or a colour function it passes through unchanged.
func IsColourValue(value string) bool {
	if _, err := colour.Parse(value); err == nil {
		return true
	}
	return colourFunctionRegex.MatchString(strings.TrimSpace(value))
}
