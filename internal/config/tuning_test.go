package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != Default() {
		t.Errorf("Load(absent) = %+v, want defaults", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	doc := `
[gesture]
tap_max_ms = 250
swipe_min_px = 80.0

[gamepad]
default_deadzone = 0.2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing tuning file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Gesture.TapMaxMS != 250 {
		t.Errorf("TapMaxMS = %d, want 250", got.Gesture.TapMaxMS)
	}
	if got.Gesture.SwipeMinPx != 80 {
		t.Errorf("SwipeMinPx = %v, want 80", got.Gesture.SwipeMinPx)
	}
	if got.Gamepad.DefaultDeadzone != 0.2 {
		t.Errorf("DefaultDeadzone = %v, want 0.2", got.Gamepad.DefaultDeadzone)
	}
	// Unset fields keep their defaults.
	if got.Gesture.LongPressMS != 500 {
		t.Errorf("LongPressMS = %d, want default 500", got.Gesture.LongPressMS)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[gesture\ntap_max_ms = "), 0o644); err != nil {
		t.Fatalf("writing tuning file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed TOML should fail")
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	doc := `
[gesture]
tap_max_ms = -5

[gamepad]
default_deadzone = 1.5
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing tuning file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Gesture.TapMaxMS != 300 {
		t.Errorf("TapMaxMS = %d, want clamped default 300", got.Gesture.TapMaxMS)
	}
	if got.Gamepad.DefaultDeadzone != 1 {
		t.Errorf("DefaultDeadzone = %v, want clamped 1", got.Gamepad.DefaultDeadzone)
	}
}

func TestDurationHelpers(t *testing.T) {
	g := Default().Gesture
	if g.TapMaxDuration() != 300*time.Millisecond {
		t.Errorf("TapMaxDuration() = %v, want 300ms", g.TapMaxDuration())
	}
	if g.SwipeMaxDuration() != 500*time.Millisecond {
		t.Errorf("SwipeMaxDuration() = %v, want 500ms", g.SwipeMaxDuration())
	}
	if g.LongPressDuration() != 500*time.Millisecond {
		t.Errorf("LongPressDuration() = %v, want 500ms", g.LongPressDuration())
	}
}
