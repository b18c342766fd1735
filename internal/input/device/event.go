package device

import (
	"fmt"
	"time"
)

// EventType identifies the kind of raw input transition.
type EventType uint8

const (
	// EventNone indicates no event.
	EventNone EventType = iota
	// EventKeyDown indicates a key was pressed.
	EventKeyDown
	// EventKeyUp indicates a key was released.
	EventKeyUp
	// EventTouchDown indicates a touch point was placed.
	EventTouchDown
	// EventTouchMove indicates an active touch point moved.
	EventTouchMove
	// EventTouchUp indicates a touch point was lifted.
	EventTouchUp
	// EventAxisMotion indicates a gamepad axis sample.
	EventAxisMotion
	// EventButtonDown indicates a gamepad button was pressed.
	EventButtonDown
	// EventButtonUp indicates a gamepad button was released.
	EventButtonUp
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventTouchDown:
		return "touch-down"
	case EventTouchMove:
		return "touch-move"
	case EventTouchUp:
		return "touch-up"
	case EventAxisMotion:
		return "axis-motion"
	case EventButtonDown:
		return "button-down"
	case EventButtonUp:
		return "button-up"
	default:
		return "none"
	}
}

// Event is a single raw input transition as reported by the device layer.
// Only the fields relevant to its Type are meaningful.
type Event struct {
	// Type is the kind of transition.
	Type EventType

	// Key is the key code for key events.
	Key Key

	// Touch is the touch identifier for touch events.
	Touch TouchID

	// Pos is the touch position for touch-down and touch-move events.
	Pos Point

	// Gamepad is the source gamepad for axis events.
	Gamepad GamepadID

	// Axis is the axis index for axis events.
	Axis Axis

	// Button is the button index for gamepad button events.
	Button Button

	// Value is the raw axis sample in [-1, 1].
	Value float64

	// Timestamp is when the event occurred. A zero timestamp is
	// stamped with the ingesting component's clock.
	Timestamp time.Time
}

// NewKeyDown creates a key press event.
func NewKeyDown(key Key) Event {
	return Event{Type: EventKeyDown, Key: key}
}

// NewKeyUp creates a key release event.
func NewKeyUp(key Key) Event {
	return Event{Type: EventKeyUp, Key: key}
}

// NewTouchDown creates a touch placement event.
func NewTouchDown(id TouchID, pos Point) Event {
	return Event{Type: EventTouchDown, Touch: id, Pos: pos}
}

// NewTouchMove creates a touch movement event.
func NewTouchMove(id TouchID, pos Point) Event {
	return Event{Type: EventTouchMove, Touch: id, Pos: pos}
}

// NewTouchUp creates a touch release event.
func NewTouchUp(id TouchID) Event {
	return Event{Type: EventTouchUp, Touch: id}
}

// NewAxisMotion creates a gamepad axis sample event.
func NewAxisMotion(gamepad GamepadID, axis Axis, value float64) Event {
	return Event{Type: EventAxisMotion, Gamepad: gamepad, Axis: axis, Value: value}
}

// NewButtonDown creates a gamepad button press event.
func NewButtonDown(gamepad GamepadID, button Button) Event {
	return Event{Type: EventButtonDown, Gamepad: gamepad, Button: button}
}

// NewButtonUp creates a gamepad button release event.
func NewButtonUp(gamepad GamepadID, button Button) Event {
	return Event{Type: EventButtonUp, Gamepad: gamepad, Button: button}
}

// At returns a copy of the event with the given timestamp.
func (e Event) At(ts time.Time) Event {
	e.Timestamp = ts
	return e
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	switch e.Type {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s(%d)", e.Type, e.Key)
	case EventTouchDown, EventTouchMove:
		return fmt.Sprintf("%s(%d @ %.1f,%.1f)", e.Type, e.Touch, e.Pos.X, e.Pos.Y)
	case EventTouchUp:
		return fmt.Sprintf("%s(%d)", e.Type, e.Touch)
	case EventAxisMotion:
		return fmt.Sprintf("%s(pad %d axis %d = %.3f)", e.Type, e.Gamepad, e.Axis, e.Value)
	case EventButtonDown, EventButtonUp:
		return fmt.Sprintf("%s(pad %d button %d)", e.Type, e.Gamepad, e.Button)
	default:
		return "none"
	}
}
