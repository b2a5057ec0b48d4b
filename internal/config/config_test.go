package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmylchreest/brandtint/internal/palette"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("FromEnv() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Format != "table" || cfg.Timeout != 10*time.Second || cfg.MinConfidence != palette.Low {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"BRANDTINT_FORMAT":         "JSON",
		"BRANDTINT_MAX_PROPERTIES": "5",
		"BRANDTINT_MAX_PALETTE":    "0",
		"BRANDTINT_MIN_CONFIDENCE": "medium",
		"BRANDTINT_TIMEOUT":        "3s",
		"BRANDTINT_NO_SWATCH":      "true",
		"BRANDTINT_LOG_JSON":       "1",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := Config{
		Format:        "json",
		MaxProperties: 5,
		MaxPalette:    0,
		MinConfidence: palette.Medium,
		Timeout:       3 * time.Second,
		NoSwatch:      true,
		LogJSON:       true,
	}
	if *cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", *cfg, want)
	}

	limits := cfg.Limits()
	if limits.MaxProperties != 5 || limits.MaxPalette != 0 || limits.MinConfidence != palette.Medium {
		t.Errorf("Limits() = %+v", limits)
	}
}

func TestFromEnvEmptyValueKeepsDefault(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{"BRANDTINT_MAX_PALETTE": "  "}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.MaxPalette != Default().MaxPalette {
		t.Errorf("MaxPalette = %d, want default", cfg.MaxPalette)
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	cases := map[string]string{
		"BRANDTINT_MAX_PROPERTIES": "many",
		"BRANDTINT_MAX_PALETTE":    "1.5",
		"BRANDTINT_MIN_CONFIDENCE": "certain",
		"BRANDTINT_TIMEOUT":        "soon",
		"BRANDTINT_NO_SWATCH":      "maybe",
		"BRANDTINT_LOG_JSON":       "perhaps",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(map[string]string{key: value})); err == nil {
				t.Errorf("FromEnv(%s=%s) expected error", key, value)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "BRANDTINT_MAX_PALETTE"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in the environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(key+"=7\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxPalette != 7 {
		t.Errorf("MaxPalette = %d, want 7", cfg.MaxPalette)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load() error = %v for missing file", err)
	}
}
