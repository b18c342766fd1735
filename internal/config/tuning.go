// Package config loads gesture and gamepad tuning parameters from TOML
// files. Absent files fall back to defaults; out-of-range values clamp.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// GestureTuning holds gesture recognition thresholds.
type GestureTuning struct {
	TapMaxMS      int     `toml:"tap_max_ms"`
	TapMaxPx      float64 `toml:"tap_max_px"`
	SwipeMinPx    float64 `toml:"swipe_min_px"`
	SwipeMaxMS    int     `toml:"swipe_max_ms"`
	LongPressMS   int     `toml:"long_press_ms"`
	PinchMinPx    float64 `toml:"pinch_min_px"`
	MoveEpsilonPx float64 `toml:"move_epsilon_px"`
}

// GamepadTuning holds analog stick conditioning defaults.
type GamepadTuning struct {
	DefaultDeadzone float64 `toml:"default_deadzone"`
}

// Tuning is the full tuning document.
type Tuning struct {
	Gesture GestureTuning `toml:"gesture"`
	Gamepad GamepadTuning `toml:"gamepad"`
}

// Default returns the built-in tuning values.
func Default() Tuning {
	return Tuning{
		Gesture: GestureTuning{
			TapMaxMS:      300,
			TapMaxPx:      10,
			SwipeMinPx:    50,
			SwipeMaxMS:    500,
			LongPressMS:   500,
			PinchMinPx:    20,
			MoveEpsilonPx: 5,
		},
		Gamepad: GamepadTuning{
			DefaultDeadzone: 0.10,
		},
	}
}

// Load reads tuning from a TOML file. A missing file returns defaults;
// a malformed file is an error. Values are clamped into valid ranges.
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("reading tuning file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parsing tuning file: %w", err)
	}
	t.clamp()
	return t, nil
}

// TapMaxDuration returns the tap window as a duration.
func (g GestureTuning) TapMaxDuration() time.Duration {
	return time.Duration(g.TapMaxMS) * time.Millisecond
}

// SwipeMaxDuration returns the swipe window as a duration.
func (g GestureTuning) SwipeMaxDuration() time.Duration {
	return time.Duration(g.SwipeMaxMS) * time.Millisecond
}

// LongPressDuration returns the long-press threshold as a duration.
func (g GestureTuning) LongPressDuration() time.Duration {
	return time.Duration(g.LongPressMS) * time.Millisecond
}

func (t *Tuning) clamp() {
	def := Default()
	if t.Gesture.TapMaxMS <= 0 {
		t.Gesture.TapMaxMS = def.Gesture.TapMaxMS
	}
	if t.Gesture.TapMaxPx <= 0 {
		t.Gesture.TapMaxPx = def.Gesture.TapMaxPx
	}
	if t.Gesture.SwipeMinPx <= 0 {
		t.Gesture.SwipeMinPx = def.Gesture.SwipeMinPx
	}
	if t.Gesture.SwipeMaxMS <= 0 {
		t.Gesture.SwipeMaxMS = def.Gesture.SwipeMaxMS
	}
	if t.Gesture.LongPressMS <= 0 {
		t.Gesture.LongPressMS = def.Gesture.LongPressMS
	}
	if t.Gesture.PinchMinPx <= 0 {
		t.Gesture.PinchMinPx = def.Gesture.PinchMinPx
	}
	if t.Gesture.MoveEpsilonPx < 0 {
		t.Gesture.MoveEpsilonPx = def.Gesture.MoveEpsilonPx
	}
	if t.Gamepad.DefaultDeadzone < 0 {
		t.Gamepad.DefaultDeadzone = 0
	}
	if t.Gamepad.DefaultDeadzone > 1 {
		t.Gamepad.DefaultDeadzone = 1
	}
}
