// Package palette merges colour observations from several extraction sources
// into a single ordered, de-duplicated palette.
package palette

import (
	"fmt"
	"strings"
)

// Confidence is an ordinal extraction-certainty tier. The zero value is unset
// and ranks below every tier.
type Confidence int

// Confidence tiers, ordered low < medium < high.
const (
	Low Confidence = iota + 1
	Medium
	High
)

// String returns the tier name.
func (c Confidence) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return ""
	}
}

// ParseConfidence parses a tier name, ignoring case and surrounding space.
func ParseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return 0, fmt.Errorf("unknown confidence %q (valid: low, medium, high)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	if c < Low || c > High {
		return nil, fmt.Errorf("invalid confidence %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Set implements pflag.Value so a tier can be given on the command line.
func (c *Confidence) Set(s string) error {
	return c.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (c *Confidence) Type() string {
	return "confidence"
}
