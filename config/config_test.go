package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Format != "png" {
		t.Errorf("default format = %q, want png", cfg.Format)
	}
	if cfg.JPEGQuality != 90 || cfg.StrokeWidth != 2 || cfg.FontSize != 14 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate_ClampsValues(t *testing.T) {
	cfg := &Config{
		Format:      "tiff",
		JPEGQuality: 500,
		StrokeWidth: -1,
		FontSize:    0,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "png" {
		t.Errorf("invalid format not reset: %q", cfg.Format)
	}
	if cfg.JPEGQuality != 90 {
		t.Errorf("quality not clamped: %d", cfg.JPEGQuality)
	}
	if cfg.StrokeWidth != 2 || cfg.FontSize != 14 {
		t.Errorf("styling not clamped: width=%v size=%v", cfg.StrokeWidth, cfg.FontSize)
	}
	if cfg.StrokeColor != "red" || cfg.TextColor != "black" {
		t.Errorf("empty colors not defaulted: %+v", cfg)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Format != "png" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	orig := DefaultConfig()
	orig.Format = "jpeg"
	orig.JPEGQuality = 75
	orig.SaveDir = "/tmp/shots"
	orig.StrokeColor = "#00ff00"

	if err := orig.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Format != "jpeg" || loaded.JPEGQuality != 75 || loaded.SaveDir != "/tmp/shots" || loaded.StrokeColor != "#00ff00" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("SNAPMARK_FORMAT", "bmp")
	os.Setenv("SNAPMARK_JPEG_QUALITY", "55")
	defer os.Unsetenv("SNAPMARK_FORMAT")
	defer os.Unsetenv("SNAPMARK_JPEG_QUALITY")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "bmp" {
		t.Errorf("env format override not applied: %q", cfg.Format)
	}
	if cfg.JPEGQuality != 55 {
		t.Errorf("env quality override not applied: %d", cfg.JPEGQuality)
	}
}
