package palette

import (
	"strings"

	"github.com/jmylchreest/brandtint/internal/colour"
)

// labelSeparator joins merged labels.
const labelSeparator = ", "

// Observation is one extracted colour value plus its provenance.
type Observation struct {
	// Raw is the colour as found, e.g. "#3366ff" or "rgb(51, 102, 255)".
	Raw        string
	Label      string
	Confidence Confidence

	// PrecomputedLCH and PrecomputedOKLCH carry values measured upstream.
	// When set they replace the recomputed strings.
	PrecomputedLCH   string
	PrecomputedOKLCH string
}

// Entry is one unique colour of a consolidated palette.
type Entry struct {
	Hex        string     `json:"hex"`
	RGB        string     `json:"rgb"`
	LCH        string     `json:"lch"`
	OKLCH      string     `json:"oklch"`
	Label      string     `json:"label,omitempty"`
	Confidence Confidence `json:"confidence"`
}

// Resolve returns the canonical record for an observation. Unsupported
// syntax resolves to the identity fallback.
func (o Observation) Resolve() colour.Record {
	rec := colour.Resolve(o.Raw)
	if o.PrecomputedLCH != "" {
		rec.LCH = o.PrecomputedLCH
	}
	if o.PrecomputedOKLCH != "" {
		rec.OKLCH = o.PrecomputedOKLCH
	}
	return rec
}

// Consolidate folds observations into a palette with one entry per
// lowercase hex, in order of first occurrence.
//
// Observations must be supplied in source-priority order. Labels from later
// duplicates are appended when not already present and confidence only ever
// increases. An unset confidence counts as Low.
func Consolidate(observations []Observation) []Entry {
	index := make(map[string]int, len(observations))
	entries := make([]Entry, 0, len(observations))

	for _, obs := range observations {
		rec := obs.Resolve()
		key := strings.ToLower(rec.Hex)
		if obs.Confidence < Low {
			obs.Confidence = Low
		}

		i, seen := index[key]
		if !seen {
			index[key] = len(entries)
			entries = append(entries, Entry{
				Hex:        rec.Hex,
				RGB:        rec.RGB,
				LCH:        rec.LCH,
				OKLCH:      rec.OKLCH,
				Label:      obs.Label,
				Confidence: obs.Confidence,
			})
			continue
		}

		existing := &entries[i]
		existing.Label = mergeLabel(existing.Label, obs.Label)
		if obs.Confidence > existing.Confidence {
			existing.Confidence = obs.Confidence
		}
	}

	return entries
}

// mergeLabel appends incoming to the comma separated set in existing unless
// it is already a member. Comparison is exact and case-sensitive.
func mergeLabel(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	if existing == "" {
		return incoming
	}

	for _, part := range strings.Split(existing, ",") {
		if strings.TrimSpace(part) == incoming {
			return existing
		}
	}
	return existing + labelSeparator + incoming
}

// Counts tallies entries per confidence tier.
type Counts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total returns the number of counted entries.
func (c Counts) Total() int {
	return c.High + c.Medium + c.Low
}

// Summary counts the entries of a consolidated palette by confidence.
func Summary(entries []Entry) Counts {
	var c Counts
	for _, e := range entries {
		switch e.Confidence {
		case High:
			c.High++
		case Medium:
			c.Medium++
		case Low:
			c.Low++
		}
	}
	return c
}
