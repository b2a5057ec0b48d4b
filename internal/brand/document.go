// Package brand models the colour data extracted from a web page and turns it
// into priority-ordered observations for consolidation.
package brand

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/brandtint/internal/palette"
)

// Document is the extraction result for one page.
type Document struct {
	URL    string `json:"url,omitempty"`
	Colors Colors `json:"colors"`
}

// Colors holds the three colour streams reported by the extraction layer.
type Colors struct {
	// Semantic maps roles such as "primary" or "background" to a colour.
	Semantic Roles `json:"semantic,omitempty"`
	// CSSVariables holds stylesheet custom properties in declaration order.
	CSSVariables Properties `json:"cssVariables,omitempty"`
	// Palette holds colours sampled from the rendered page.
	Palette []Sample `json:"palette,omitempty"`
}

// Role is a semantic colour assignment.
type Role struct {
	Name  string
	Value string
}

// Roles is an ordered role → colour object.
type Roles []Role

// UnmarshalJSON decodes a JSON object keeping key order.
func (r *Roles) UnmarshalJSON(data []byte) error {
	var roles Roles
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("semantic role %q: %w", key, err)
		}
		roles = append(roles, Role{Name: key, Value: value})
		return nil
	})
	if err != nil {
		return err
	}
	*r = roles
	return nil
}

// MarshalJSON encodes the roles as a JSON object in slice order.
func (r Roles) MarshalJSON() ([]byte, error) {
	return encodeObject(len(r), func(i int) (string, any) {
		return r[i].Name, r[i].Value
	})
}

// Property is one stylesheet custom property.
type Property struct {
	Name  string
	Value PropertyValue
}

// Properties is an ordered name → value object.
type Properties []Property

// UnmarshalJSON decodes a JSON object keeping key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var props Properties
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var value PropertyValue
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("custom property %q: %w", key, err)
		}
		props = append(props, Property{Name: key, Value: value})
		return nil
	})
	if err != nil {
		return err
	}
	*p = props
	return nil
}

// MarshalJSON encodes the properties as a JSON object in slice order.
func (p Properties) MarshalJSON() ([]byte, error) {
	return encodeObject(len(p), func(i int) (string, any) {
		return p[i].Name, p[i].Value
	})
}

// Lookup returns the property with the given name.
func (p Properties) Lookup(name string) (PropertyValue, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return PropertyValue{}, false
}

// PropertyValue is a custom property value. Upstream it is either a bare
// colour string or an object carrying precomputed LCH/OKLCH strings; both
// decode into this one shape.
type PropertyValue struct {
	Value string `json:"value"`
	LCH   string `json:"lch,omitempty"`
	OKLCH string `json:"oklch,omitempty"`
}

// UnmarshalJSON accepts either "value" or {"value": ..., "lch": ..., "oklch": ...}.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = PropertyValue{Value: s}
		return nil
	}

	// Alias drops the method set to avoid recursion.
	type plain PropertyValue
	var obj plain
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("expected string or object: %w", err)
	}
	*v = PropertyValue(obj)
	return nil
}

// MarshalJSON writes a bare string when no precomputed values are present.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	if v.LCH == "" && v.OKLCH == "" {
		return json.Marshal(v.Value)
	}
	type plain PropertyValue
	return json.Marshal(plain(v))
}

// Sample is a colour sampled from the rendered page.
type Sample struct {
	Color      string             `json:"color"`
	Confidence palette.Confidence `json:"confidence"`
	LCH        string             `json:"lch,omitempty"`
	OKLCH      string             `json:"oklch,omitempty"`
}
