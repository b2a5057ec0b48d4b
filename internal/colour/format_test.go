package colour

import (
	"fmt"
	"strings"
	"testing"
)

func TestConvertKnownColours(t *testing.T) {
	tests := []struct {
		raw  string
		want Record
	}{
		{
			raw: "#ff0000",
			want: Record{
				Hex:   "#ff0000",
				RGB:   "rgb(255, 0, 0)",
				LCH:   "lch(53.24% 104.55 40)",
				OKLCH: "oklch(62.8% 0.258 29.23)",
			},
		},
		{
			raw: "#00F",
			want: Record{
				Hex:   "#0000ff",
				RGB:   "rgb(0, 0, 255)",
				LCH:   "lch(32.3% 133.81 306.28)",
				OKLCH: "oklch(45.2% 0.313 264.05)",
			},
		},
		{
			raw: "rgb(51, 102, 255)",
			want: Record{
				Hex:   "#3366ff",
				RGB:   "rgb(51, 102, 255)",
				LCH:   "lch(48.79% 88.81 294.95)",
				OKLCH: "oklch(57.26% 0.234 265.28)",
			},
		},
		{
			raw: "#000000",
			want: Record{
				Hex:   "#000000",
				RGB:   "rgb(0, 0, 0)",
				LCH:   "lch(0% 0 0)",
				OKLCH: "oklch(0% 0 0)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Convert(tt.raw)
			if !ok {
				t.Fatalf("Convert(%q) failed", tt.raw)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestConvertWhite(t *testing.T) {
	got, ok := Convert("#ffffff")
	if !ok {
		t.Fatal("Convert(#ffffff) failed")
	}
	if got.Hex != "#ffffff" {
		t.Errorf("Hex = %q", got.Hex)
	}
	if got.RGB != "rgb(255, 255, 255)" {
		t.Errorf("RGB = %q", got.RGB)
	}
	// Hue of an achromatic colour is numerical noise, only L and C are stable.
	if !strings.HasPrefix(got.LCH, "lch(100% 0 ") {
		t.Errorf("LCH = %q, want L=100%% C=0", got.LCH)
	}
	if !strings.HasPrefix(got.OKLCH, "oklch(100% 0 ") {
		t.Errorf("OKLCH = %q, want L=100%% C=0", got.OKLCH)
	}
	if got.HasAlpha {
		t.Error("HasAlpha should be false")
	}
}

func TestConvertAlpha(t *testing.T) {
	got, ok := Convert("rgba(255,0,0,0.5)")
	if !ok {
		t.Fatal("Convert failed")
	}
	if !got.HasAlpha {
		t.Error("HasAlpha should be true")
	}
	if got.Hex != "#ff0000" {
		t.Errorf("Hex = %q, alpha must not be encoded", got.Hex)
	}
	if got.RGB != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("RGB = %q", got.RGB)
	}
	if !strings.Contains(got.RGB, ", 0.5)") {
		t.Errorf("RGB %q should contain alpha", got.RGB)
	}
	if got.LCH != "lch(53.24% 104.55 40 / 0.5)" {
		t.Errorf("LCH = %q", got.LCH)
	}
	if got.OKLCH != "oklch(62.8% 0.258 29.23 / 0.5)" {
		t.Errorf("OKLCH = %q", got.OKLCH)
	}
}

func TestConvertOpaqueAlpha(t *testing.T) {
	for _, raw := range []string{"rgba(255, 0, 0, 1)", "#ff0000ff"} {
		got, ok := Convert(raw)
		if !ok {
			t.Fatalf("Convert(%q) failed", raw)
		}
		if got.HasAlpha {
			t.Errorf("%q: HasAlpha should be false for alpha 1", raw)
		}
		if got.RGB != "rgba(255, 0, 0, 1)" {
			t.Errorf("%q: RGB = %q, want rgba form for a present alpha", raw, got.RGB)
		}
		if strings.Contains(got.LCH, "/") || strings.Contains(got.OKLCH, "/") {
			t.Errorf("%q: unexpected alpha suffix in %q / %q", raw, got.LCH, got.OKLCH)
		}
	}
}

func TestConvertOutOfRangeChannelsUnchecked(t *testing.T) {
	got, ok := Convert("rgb(300, 0, 0)")
	if !ok {
		t.Fatal("Convert(rgb(300, 0, 0)) failed")
	}
	// Channels are neither clamped nor rejected.
	if got.Hex != "#12c0000" {
		t.Errorf("Hex = %q, want #12c0000", got.Hex)
	}
	if got.RGB != "rgb(300, 0, 0)" {
		t.Errorf("RGB = %q, want rgb(300, 0, 0)", got.RGB)
	}
}

func TestConvertEightDigitHexDropsAlphaFromHex(t *testing.T) {
	got, ok := Convert("#FF000080")
	if !ok {
		t.Fatal("Convert failed")
	}
	if got.Hex != "#ff0000" {
		t.Errorf("Hex = %q", got.Hex)
	}
	if !got.HasAlpha {
		t.Error("HasAlpha should be true")
	}
	if got.RGB != "rgba(255, 0, 0, 0.5019607843137255)" {
		t.Errorf("RGB = %q", got.RGB)
	}
}

func TestConvertHexRoundTrip(t *testing.T) {
	for i := 0; i < 4096; i += 7 {
		hex := fmt.Sprintf("#%02X%02x%02X", (i*37)%256, (i*91)%256, (i*13)%256)
		got, ok := Convert(hex)
		if !ok {
			t.Fatalf("Convert(%q) failed", hex)
		}
		if got.Hex != strings.ToLower(hex) {
			t.Errorf("Convert(%q).Hex = %q", hex, got.Hex)
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	inputs := []string{"#abc", "#ABCDEF", "rgb(1, 2, 3)", "rgba(10, 20, 30, 0.2)", "#12345678"}
	for _, raw := range inputs {
		first, ok := Convert(raw)
		if !ok {
			t.Fatalf("Convert(%q) failed", raw)
		}
		second, ok := Convert(first.Hex)
		if !ok {
			t.Fatalf("Convert(%q) failed", first.Hex)
		}
		if second.Hex != first.Hex {
			t.Errorf("%q: hex %q became %q", raw, first.Hex, second.Hex)
		}
	}
}

func TestConvertUnparseable(t *testing.T) {
	if _, ok := Convert("hsl(200,50%,50%)"); ok {
		t.Fatal("Convert(hsl) should fail")
	}

	raw := "hsl(200,50%,50%)"
	got := Resolve(raw)
	want := Record{Hex: raw, RGB: raw, LCH: raw, OKLCH: raw}
	if got != want {
		t.Errorf("Resolve(%q) = %+v, want %+v", raw, got, want)
	}
}

func TestResolveParseable(t *testing.T) {
	got := Resolve("#ABC")
	if got.Hex != "#aabbcc" {
		t.Errorf("Resolve(#ABC).Hex = %q", got.Hex)
	}
}

func TestFormatLCH(t *testing.T) {
	half := 0.5
	one := 1.0
	tests := []struct {
		name  string
		lch   LCH
		alpha *float64
		want  string
	}{
		{name: "rounding", lch: LCH{L: 12.346, C: 0.004, H: 359.999}, want: "lch(12.35% 0 360)"},
		{name: "trailing zeros trimmed", lch: LCH{L: 50, C: 10.1, H: 7}, want: "lch(50% 10.1 7)"},
		{name: "alpha", lch: LCH{L: 50, C: 10, H: 7}, alpha: &half, want: "lch(50% 10 7 / 0.5)"},
		{name: "opaque alpha omitted", lch: LCH{L: 50, C: 10, H: 7}, alpha: &one, want: "lch(50% 10 7)"},
		{name: "negative zero", lch: LCH{L: -0.001, C: 0, H: 0}, want: "lch(0% 0 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLCH(tt.lch, tt.alpha); got != tt.want {
				t.Errorf("FormatLCH() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatOKLCH(t *testing.T) {
	quarter := 0.25
	tests := []struct {
		name  string
		oklch OKLCH
		alpha *float64
		want  string
	}{
		{name: "percentage lightness", oklch: OKLCH{L: 0.62796, C: 0.25768, H: 29.2339}, want: "oklch(62.8% 0.258 29.23)"},
		{name: "chroma three decimals", oklch: OKLCH{L: 0.5, C: 0.12345, H: 100}, want: "oklch(50% 0.123 100)"},
		{name: "alpha", oklch: OKLCH{L: 1, C: 0, H: 0}, alpha: &quarter, want: "oklch(100% 0 0 / 0.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatOKLCH(tt.oklch, tt.alpha); got != tt.want {
				t.Errorf("FormatOKLCH() = %q, want %q", got, tt.want)
			}
		})
	}
}
