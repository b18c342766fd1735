package touch

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Type identifies a recognized gesture.
type Type uint8

const (
	// Tap is a short press with negligible movement.
	Tap Type = iota
	// LongPress is a sustained press with negligible movement.
	LongPress
	// Swipe is a quick directional stroke.
	Swipe
	// Pinch is a two-touch spread or squeeze.
	Pinch
	// Rotate is a two-touch rotation. Declared for completeness; the
	// recognizer does not currently emit it.
	Rotate
	// Drag is a sustained directional movement. Declared for
	// completeness; the recognizer does not currently emit it.
	Drag
)

// String returns a string representation of the gesture type.
func (t Type) String() string {
	switch t {
	case Tap:
		return "tap"
	case LongPress:
		return "long-press"
	case Swipe:
		return "swipe"
	case Pinch:
		return "pinch"
	case Rotate:
		return "rotate"
	case Drag:
		return "drag"
	default:
		return "unknown"
	}
}

// Gesture is an immutable recognized touch interaction. Gestures are
// produced once and consumed by the frame that drained them.
type Gesture struct {
	// Type is the kind of gesture.
	Type Type

	// Position is the reference position: the start point for single
	// touch gestures, the current midpoint for pinches.
	Position device.Point

	// Start is the position where the gesture began. For pinches this
	// is the midpoint of the two start positions.
	Start device.Point

	// End is the position where the gesture ended.
	End device.Point

	// Distance is the gesture's scalar movement. For pinches it is the
	// magnitude of the inter-touch distance change; whether the pinch
	// opened or closed is not reported.
	Distance float64

	// Direction is the unit vector from Start to End. Defined only for
	// swipes.
	Direction device.Point

	// Duration is how long the touch was held.
	Duration time.Duration

	// Touch is the originating touch id. Zero for multi-touch gestures,
	// which report a synthetic center instead.
	Touch device.TouchID
}
