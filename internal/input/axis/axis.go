// Package axis provides per-gamepad analog axis conditioning.
//
// Each gamepad gets a Config holding per-axis deadzone and inversion
// settings plus button-to-action bindings. Conditioning is a pure
// transform over the config state: deadzone rescaling first, then
// inversion, so the deadzone curve stays symmetric before sign-flipping.
package axis

import (
	"math"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// DefaultDeadzone is the deadzone applied to axes without an explicit
// setting.
const DefaultDeadzone = 0.10

// Config holds the analog conditioning settings for one gamepad.
type Config struct {
	gamepad         device.GamepadID
	defaultDeadzone float64
	deadzones       map[device.Axis]float64
	inverted        map[device.Axis]bool
	buttons         map[device.Button]string
}

// NewConfig creates an empty config for the given gamepad.
func NewConfig(gamepad device.GamepadID) *Config {
	return &Config{
		gamepad:         gamepad,
		defaultDeadzone: DefaultDeadzone,
		deadzones:       make(map[device.Axis]float64),
		inverted:        make(map[device.Axis]bool),
		buttons:         make(map[device.Button]string),
	}
}

// Gamepad returns the gamepad this config belongs to.
func (c *Config) Gamepad() device.GamepadID {
	return c.gamepad
}

// SetDeadzone sets the deadzone for an axis. Values outside [0, 1] are
// clamped into range rather than rejected; the deadzone is a tuning
// knob, not a contract.
func (c *Config) SetDeadzone(axis device.Axis, deadzone float64) {
	c.deadzones[axis] = math.Max(0, math.Min(1, deadzone))
}

// SetDefaultDeadzone sets the fallback deadzone applied to axes
// without an explicit setting. Clamped into [0, 1] like SetDeadzone.
func (c *Config) SetDefaultDeadzone(deadzone float64) {
	c.defaultDeadzone = math.Max(0, math.Min(1, deadzone))
}

// DefaultDeadzone returns the fallback deadzone for this config.
func (c *Config) DefaultDeadzone() float64 {
	return c.defaultDeadzone
}

// Deadzone returns the deadzone for an axis, falling back to the
// config's default deadzone when unset.
func (c *Config) Deadzone(axis device.Axis) float64 {
	if dz, ok := c.deadzones[axis]; ok {
		return dz
	}
	return c.defaultDeadzone
}

// SetInverted sets the inversion flag for an axis.
func (c *Config) SetInverted(axis device.Axis, inverted bool) {
	c.inverted[axis] = inverted
}

// Inverted reports whether an axis is inverted. Defaults to false.
func (c *Config) Inverted(axis device.Axis) bool {
	return c.inverted[axis]
}

// MapButton binds a gamepad button to a logical action name.
func (c *Config) MapButton(button device.Button, action string) {
	c.buttons[button] = action
}

// ActionForButton returns the action bound to a button. The second
// return is false when the button is unbound.
func (c *Config) ActionForButton(button device.Button) (string, bool) {
	action, ok := c.buttons[button]
	return action, ok
}

// Buttons returns a copy of the button-to-action bindings.
func (c *Config) Buttons() map[device.Button]string {
	out := make(map[device.Button]string, len(c.buttons))
	for b, a := range c.buttons {
		out[b] = a
	}
	return out
}

// Deadzones returns a copy of the explicit per-axis deadzones. Axes
// using the default deadzone are not included.
func (c *Config) Deadzones() map[device.Axis]float64 {
	out := make(map[device.Axis]float64, len(c.deadzones))
	for a, dz := range c.deadzones {
		out[a] = dz
	}
	return out
}

// Inversions returns a copy of the per-axis inversion flags.
func (c *Config) Inversions() map[device.Axis]bool {
	out := make(map[device.Axis]bool, len(c.inverted))
	for a, inv := range c.inverted {
		out[a] = inv
	}
	return out
}

// ApplyDeadzone applies the axis deadzone to a raw sample. Inside the
// deadzone the output is 0; outside it the value is rescaled so the
// curve is continuous at the deadzone boundary and reaches ±1 at ±1.
// A deadzone of 1 suppresses the axis entirely.
func (c *Config) ApplyDeadzone(axis device.Axis, value float64) float64 {
	deadzone := c.Deadzone(axis)

	if math.Abs(value) < deadzone {
		return 0
	}

	span := 1 - deadzone
	if span <= 1e-9 {
		return 0
	}

	sign := 1.0
	if value < 0 {
		sign = -1.0
	}
	return sign * (math.Abs(value) - deadzone) / span
}

// ApplyInversion negates the value when the axis inversion flag is set.
func (c *Config) ApplyInversion(axis device.Axis, value float64) float64 {
	if c.Inverted(axis) {
		return -value
	}
	return value
}

// Condition runs the full conditioning pipeline on a raw sample:
// deadzone rescaling, then inversion.
func (c *Config) Condition(axis device.Axis, value float64) float64 {
	return c.ApplyInversion(axis, c.ApplyDeadzone(axis, value))
}
