package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/brandtint/internal/palette"
)

func TestHexToUnitRGB(t *testing.T) {
	tests := []struct {
		hex  string
		want UnitRGB
		ok   bool
	}{
		{hex: "#ff0000", want: UnitRGB{R: 1}, ok: true},
		{hex: "#ffffff", want: UnitRGB{R: 1, G: 1, B: 1}, ok: true},
		{hex: "#3366ff", want: UnitRGB{R: 0.2, G: 0.4, B: 1}, ok: true},
		{hex: "#808080", want: UnitRGB{R: 0.502, G: 0.502, B: 0.502}, ok: true},
		{hex: "currentColor", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, ok := HexToUnitRGB(tt.hex)
			if ok != tt.ok {
				t.Fatalf("HexToUnitRGB(%q) ok = %v, want %v", tt.hex, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("HexToUnitRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	entries := []palette.Entry{
		{Hex: "#3366ff", Label: "primary, --brand", Confidence: palette.High},
		{Hex: "#ffffff", Label: "--surface", Confidence: palette.Medium},
		{Hex: "var(--x)", Label: "--broken", Confidence: palette.Medium},
		{Hex: "#ff6600", Confidence: palette.Low},
		{Hex: "#000000", Label: "primary", Confidence: palette.Low},
	}

	tokens, skipped := Tokens(entries)

	wantNames := []string{"primary", "surface", "color-3", "primary-2"}
	if len(tokens) != len(wantNames) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(wantNames), tokens)
	}
	for i, name := range wantNames {
		if tokens[i].Name != name {
			t.Errorf("token %d name = %q, want %q", i, tokens[i].Name, name)
		}
	}
	if len(skipped) != 1 || skipped[0].Hex != "var(--x)" {
		t.Errorf("skipped = %+v", skipped)
	}
}

func TestJSON(t *testing.T) {
	entries := palette.Consolidate([]palette.Observation{
		{Raw: "#3366ff", Label: "primary", Confidence: palette.High},
		{Raw: "#ff6600", Confidence: palette.Low},
	})

	var buf bytes.Buffer
	if err := JSON(&buf, "https://example.com", entries); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc struct {
		Source  string `json:"source"`
		Colors  []map[string]any
		Summary palette.Counts
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc.Source != "https://example.com" {
		t.Errorf("source = %q", doc.Source)
	}
	if len(doc.Colors) != 2 || doc.Colors[0]["hex"] != "#3366ff" || doc.Colors[0]["confidence"] != "high" {
		t.Errorf("colors = %+v", doc.Colors)
	}
	if _, ok := doc.Colors[1]["label"]; ok {
		t.Errorf("empty label should be omitted: %+v", doc.Colors[1])
	}
	if doc.Summary.High != 1 || doc.Summary.Low != 1 {
		t.Errorf("summary = %+v", doc.Summary)
	}
}

func TestJSONObservationsWithoutConfidence(t *testing.T) {
	entries := palette.Consolidate([]palette.Observation{{Raw: "#fff"}})

	var buf bytes.Buffer
	if err := JSON(&buf, "", entries); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"confidence": "low"`) {
		t.Errorf("expected low confidence, got:\n%s", buf.String())
	}
}

func TestJSONEmptyPalette(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, "", nil); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"colors": []`) {
		t.Errorf("expected empty colour array, got:\n%s", buf.String())
	}
}

func TestDesignTokens(t *testing.T) {
	var buf bytes.Buffer
	tokens := []Token{{Name: "primary", Hex: "#ff0000", Color: UnitRGB{R: 1}}}
	if err := DesignTokens(&buf, tokens); err != nil {
		t.Fatalf("DesignTokens() error = %v", err)
	}

	var got []Token
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0] != tokens[0] {
		t.Errorf("round trip = %+v", got)
	}
}
