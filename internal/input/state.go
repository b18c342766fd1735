package input

import (
	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// keyState tracks pressed, just-pressed, and just-released keys. The
// "just" sets reflect transitions within the current frame only.
type keyState struct {
	pressed      map[device.Key]bool
	justPressed  map[device.Key]bool
	justReleased map[device.Key]bool
}

func newKeyState() *keyState {
	return &keyState{
		pressed:      make(map[device.Key]bool),
		justPressed:  make(map[device.Key]bool),
		justReleased: make(map[device.Key]bool),
	}
}

// beginFrame clears the per-frame transition sets.
func (s *keyState) beginFrame() {
	clear(s.justPressed)
	clear(s.justReleased)
}

// press records a key-down transition. Repeated downs without an
// intervening up are ignored.
func (s *keyState) press(k device.Key) bool {
	if s.pressed[k] {
		return false
	}
	s.pressed[k] = true
	s.justPressed[k] = true
	return true
}

// release records a key-up transition for a held key.
func (s *keyState) release(k device.Key) bool {
	if !s.pressed[k] {
		return false
	}
	delete(s.pressed, k)
	s.justReleased[k] = true
	return true
}

// buttonKey identifies a gamepad button across pads.
type buttonKey struct {
	gamepad device.GamepadID
	button  device.Button
}

// buttonState mirrors keyState for gamepad buttons.
type buttonState struct {
	pressed      map[buttonKey]bool
	justPressed  map[buttonKey]bool
	justReleased map[buttonKey]bool
}

func newButtonState() *buttonState {
	return &buttonState{
		pressed:      make(map[buttonKey]bool),
		justPressed:  make(map[buttonKey]bool),
		justReleased: make(map[buttonKey]bool),
	}
}

func (s *buttonState) beginFrame() {
	clear(s.justPressed)
	clear(s.justReleased)
}

func (s *buttonState) press(b buttonKey) bool {
	if s.pressed[b] {
		return false
	}
	s.pressed[b] = true
	s.justPressed[b] = true
	return true
}

func (s *buttonState) release(b buttonKey) bool {
	if !s.pressed[b] {
		return false
	}
	delete(s.pressed, b)
	s.justReleased[b] = true
	return true
}
