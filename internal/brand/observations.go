package brand

import (
	"strings"

	"github.com/jmylchreest/brandtint/internal/palette"
)

// Default per-stream caps.
const (
	DefaultMaxProperties = 20
	DefaultMaxPalette    = 20
)

// Confidence assigned to streams that do not carry their own.
const (
	semanticConfidence = palette.High
	propertyConfidence = palette.Medium
	sampleConfidence   = palette.Low
)

// Limits caps and filters the streams before consolidation.
type Limits struct {
	// MaxProperties caps custom properties; zero or less means no cap.
	MaxProperties int
	// MaxPalette caps sampled colours kept after filtering; zero or less means no cap.
	MaxPalette int
	// MinConfidence drops sampled colours below this tier.
	MinConfidence palette.Confidence
}

// DefaultLimits returns the standard caps with no confidence filter.
func DefaultLimits() Limits {
	return Limits{
		MaxProperties: DefaultMaxProperties,
		MaxPalette:    DefaultMaxPalette,
		MinConfidence: palette.Low,
	}
}

// Observations flattens the document into consolidation input, ordered by
// source priority: semantic roles, then custom properties, then sampled
// palette colours. Entries with an empty colour value are skipped.
func (d *Document) Observations(limits Limits) []palette.Observation {
	c := d.Colors
	obs := make([]palette.Observation, 0, len(c.Semantic)+len(c.CSSVariables)+len(c.Palette))

	for _, role := range c.Semantic {
		value := strings.TrimSpace(role.Value)
		if value == "" {
			continue
		}
		obs = append(obs, palette.Observation{
			Raw:        value,
			Label:      role.Name,
			Confidence: semanticConfidence,
		})
	}

	kept := 0
	for _, prop := range c.CSSVariables {
		if limits.MaxProperties > 0 && kept >= limits.MaxProperties {
			break
		}
		value := strings.TrimSpace(prop.Value.Value)
		if value == "" {
			continue
		}
		obs = append(obs, palette.Observation{
			Raw:              value,
			Label:            prop.Name,
			Confidence:       propertyConfidence,
			PrecomputedLCH:   prop.Value.LCH,
			PrecomputedOKLCH: prop.Value.OKLCH,
		})
		kept++
	}

	kept = 0
	for _, sample := range c.Palette {
		if limits.MaxPalette > 0 && kept >= limits.MaxPalette {
			break
		}
		value := strings.TrimSpace(sample.Color)
		if value == "" {
			continue
		}
		confidence := sample.Confidence
		if confidence == 0 {
			confidence = sampleConfidence
		}
		if confidence < limits.MinConfidence {
			continue
		}
		obs = append(obs, palette.Observation{
			Raw:              value,
			Confidence:       confidence,
			PrecomputedLCH:   sample.LCH,
			PrecomputedOKLCH: sample.OKLCH,
		})
		kept++
	}

	return obs
}

// Consolidate is a convenience for palette.Consolidate(d.Observations(limits)).
func (d *Document) Consolidate(limits Limits) []palette.Entry {
	return palette.Consolidate(d.Observations(limits))
}

// MergeProperties appends custom properties not already present in the
// document, preserving the order of props.
func (d *Document) MergeProperties(props Properties) int {
	added := 0
	for _, prop := range props {
		if _, ok := d.Colors.CSSVariables.Lookup(prop.Name); ok {
			continue
		}
		d.Colors.CSSVariables = append(d.Colors.CSSVariables, prop)
		added++
	}
	return added
}
