package record

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Kind identifies the recorded transition.
type Kind uint8

const (
	// Press is a key press.
	Press Kind = iota
	// Release is a key release.
	Release
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Press:
		return "key_press"
	case Release:
		return "key_release"
	default:
		return "unknown"
	}
}

// Event is a single recorded key transition. Offset is relative to the
// recording start.
type Event struct {
	// Kind is the transition type.
	Kind Kind

	// Key is the key code.
	Key device.Key

	// Offset is the time since recording started.
	Offset time.Duration
}
