package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Data.Size != 100 || cfg.Data.Min != 10 || cfg.Data.Max != 440 {
		t.Errorf("unexpected data defaults: %+v", cfg.Data)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDelays(t *testing.T) {
	d := DefaultConfig().Delays()
	if d.Initial != 40*time.Millisecond || d.Min != 5*time.Millisecond ||
		d.Max != 200*time.Millisecond || d.Step != 5*time.Millisecond {
		t.Errorf("unexpected delays: %+v", d)
	}
	if got := DefaultConfig().FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval() = %v", got)
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Min, cfg.Data.Max = 50, 10
	cfg.Data.Shape = "spiral"
	cfg.Audio.Volume = 2

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"data.min", "spiral", "audio.volume"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestValidate_InitialDelayOutsideBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.InitialDelayMs = 500
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("duplicates_demo")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Algorithm != "merge" || cfg.Data.Max != 4 {
		t.Errorf("unexpected preset contents: %+v", cfg)
	}
	if cfg.Preset != "duplicates_demo" {
		t.Errorf("preset name not recorded: %q", cfg.Preset)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 7 {
		t.Fatalf("expected 7 presets, got %v", names)
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	body := "algorithm: quick\ndata:\n  size: 32\ndisplay:\n  colors:\n    bar: [1, 2, 3]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Algorithm != "quick" || cfg.Data.Size != 32 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Data.Max != DefaultMaxValue {
		t.Errorf("unset field lost its default: max=%d", cfg.Data.Max)
	}
	if cfg.Display.Colors.Bar != (RGB{1, 2, 3}) {
		t.Errorf("colour = %v", cfg.Display.Colors.Bar)
	}
}

func TestLoad_PresetThenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	if err := os.WriteFile(path, []byte("preset: small\ndata:\n  size: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Size != 20 {
		t.Errorf("file should override preset size, got %d", cfg.Data.Size)
	}
	if cfg.Timing.InitialDelayMs != 150 {
		t.Errorf("preset delay not applied, got %d", cfg.Timing.InitialDelayMs)
	}
}

func TestLoad_UnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	if err := os.WriteFile(path, []byte("preset: galaxy\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("large")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Data.Size != 200 || back.Timing.InitialDelayMs != 5 {
		t.Errorf("saved config not restored: %+v", back.Data)
	}
}
