package axis

import (
	"math"
	"testing"
)

func TestDeadzoneDefault(t *testing.T) {
	c := NewConfig(0)
	if got := c.Deadzone(0); got != DefaultDeadzone {
		t.Errorf("Deadzone(0) = %f, want %f", got, DefaultDeadzone)
	}
}

func TestSetDefaultDeadzone(t *testing.T) {
	c := NewConfig(0)
	c.SetDefaultDeadzone(0.5)

	if got := c.Deadzone(0); got != 0.5 {
		t.Errorf("Deadzone(0) = %f, want configured default 0.5", got)
	}
	if got := c.DefaultDeadzone(); got != 0.5 {
		t.Errorf("DefaultDeadzone() = %f, want 0.5", got)
	}

	// An explicit per-axis setting still wins.
	c.SetDeadzone(1, 0.2)
	if got := c.Deadzone(1); got != 0.2 {
		t.Errorf("Deadzone(1) = %f, want explicit 0.2", got)
	}

	// The default clamps like SetDeadzone.
	c.SetDefaultDeadzone(1.5)
	if got := c.Deadzone(0); got != 1 {
		t.Errorf("Deadzone(0) = %f, want clamped 1", got)
	}
}

func TestSetDeadzoneClamps(t *testing.T) {
	tests := []struct {
		name     string
		set      float64
		expected float64
	}{
		{"in range", 0.15, 0.15},
		{"below zero", -0.5, 0},
		{"above one", 1.5, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig(0)
			c.SetDeadzone(0, tt.set)
			if got := c.Deadzone(0); got != tt.expected {
				t.Errorf("Deadzone after SetDeadzone(%f) = %f, want %f", tt.set, got, tt.expected)
			}
		})
	}
}

func TestApplyDeadzoneSuppressesInside(t *testing.T) {
	c := NewConfig(0)
	c.SetDeadzone(0, 0.2)

	// Everything strictly inside the deadzone reports 0.
	for _, v := range []float64{0, 0.05, 0.19, -0.19, -0.1} {
		if got := c.ApplyDeadzone(0, v); got != 0 {
			t.Errorf("ApplyDeadzone(%f) = %f, want 0", v, got)
		}
	}
}

func TestApplyDeadzoneRescales(t *testing.T) {
	c := NewConfig(0)
	c.SetDeadzone(0, 0.2)

	// Continuity at the boundary: output approaches 0 at the edge.
	if got := c.ApplyDeadzone(0, 0.2); math.Abs(got) > 1e-9 {
		t.Errorf("ApplyDeadzone(0.2) = %f, want 0", got)
	}

	// Full deflection still reaches ±1.
	if got := c.ApplyDeadzone(0, 1.0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ApplyDeadzone(1.0) = %f, want 1.0", got)
	}
	if got := c.ApplyDeadzone(0, -1.0); math.Abs(got+1.0) > 1e-9 {
		t.Errorf("ApplyDeadzone(-1.0) = %f, want -1.0", got)
	}

	// Midpoint of the live range maps to the midpoint of the output.
	if got := c.ApplyDeadzone(0, 0.6); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ApplyDeadzone(0.6) = %f, want 0.5", got)
	}
}

func TestApplyDeadzoneFullSuppression(t *testing.T) {
	c := NewConfig(0)
	c.SetDeadzone(0, 1)

	for _, v := range []float64{0, 0.5, 1, -1} {
		if got := c.ApplyDeadzone(0, v); got != 0 {
			t.Errorf("ApplyDeadzone(%f) with deadzone 1 = %f, want 0", v, got)
		}
	}
}

func TestApplyInversion(t *testing.T) {
	c := NewConfig(0)

	if got := c.ApplyInversion(0, 0.5); got != 0.5 {
		t.Errorf("ApplyInversion without flag = %f, want 0.5", got)
	}

	c.SetInverted(0, true)
	if got := c.ApplyInversion(0, 0.5); got != -0.5 {
		t.Errorf("ApplyInversion with flag = %f, want -0.5", got)
	}
}

func TestInversionInvolution(t *testing.T) {
	c := NewConfig(0)
	c.SetInverted(2, true)

	for _, v := range []float64{-1, -0.3, 0, 0.7, 1} {
		if got := c.ApplyInversion(2, c.ApplyInversion(2, v)); got != v {
			t.Errorf("double inversion of %f = %f, want %f", v, got, v)
		}
	}
}

func TestConditionOrder(t *testing.T) {
	c := NewConfig(0)
	c.SetDeadzone(0, 0.2)
	c.SetInverted(0, true)

	// Deadzone applies before inversion: 0.6 rescales to 0.5, then flips.
	if got := c.Condition(0, 0.6); math.Abs(got+0.5) > 1e-9 {
		t.Errorf("Condition(0.6) = %f, want -0.5", got)
	}

	// Inside the deadzone the inverted axis still reports exactly 0.
	if got := c.Condition(0, 0.1); got != 0 {
		t.Errorf("Condition(0.1) = %f, want 0", got)
	}
}

func TestButtonMapping(t *testing.T) {
	c := NewConfig(1)

	c.MapButton(0, "JUMP")
	c.MapButton(1, "ATTACK")

	action, ok := c.ActionForButton(0)
	if !ok || action != "JUMP" {
		t.Errorf("ActionForButton(0) = %q, %v, want JUMP, true", action, ok)
	}

	if _, ok := c.ActionForButton(5); ok {
		t.Error("ActionForButton on unbound button should report false")
	}

	buttons := c.Buttons()
	if len(buttons) != 2 {
		t.Errorf("Buttons() len = %d, want 2", len(buttons))
	}
	buttons[0] = "OTHER"
	if a, _ := c.ActionForButton(0); a != "JUMP" {
		t.Error("Buttons() must return a copy")
	}
}
