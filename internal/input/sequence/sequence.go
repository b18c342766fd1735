// Package sequence detects ordered key sequences within a time window.
//
// A sequence advances one step per matching just-pressed key. Unrelated
// keys pressed mid-sequence are ignored rather than resetting progress;
// only exceeding the time window (measured from the first key's press)
// resets the machine. That forgiveness is a deliberate interaction
// choice, not an accident. Completion latches until Reset.
package sequence

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// State identifies where the sequence machine is.
type State uint8

const (
	// Idle means no progress; the next expected key is the first.
	Idle State = iota
	// InProgress means at least one key has matched and the window
	// timer is running.
	InProgress
	// Completed means every key matched in order within the window.
	// Terminal until Reset.
	Completed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Sequence is an ordered chain of key presses with a total time window.
type Sequence struct {
	keys   []device.Key
	window time.Duration

	index   int
	started time.Time
	state   State
}

// New creates a sequence over the given keys with the given window.
func New(keys []device.Key, window time.Duration) *Sequence {
	s := &Sequence{
		keys:   make([]device.Key, len(keys)),
		window: window,
	}
	copy(s.keys, keys)
	return s
}

// Keys returns a copy of the sequence's key codes.
func (s *Sequence) Keys() []device.Key {
	out := make([]device.Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Window returns the total time window.
func (s *Sequence) Window() time.Duration {
	return s.window
}

// Advance feeds one just-pressed key into the machine and reports
// whether the sequence is completed. Once completed it keeps reporting
// true without further state change until Reset.
func (s *Sequence) Advance(key device.Key, now time.Time) bool {
	switch s.state {
	case Completed:
		return true

	case Idle:
		if len(s.keys) > 0 && key == s.keys[0] {
			s.started = now
			s.index = 1
			if s.index == len(s.keys) {
				s.state = Completed
				return true
			}
			s.state = InProgress
		}
		return false

	case InProgress:
		// Timeout is checked before matching: a key arriving past the
		// window resets the machine even when it would have matched,
		// and the late key itself is discarded.
		if now.Sub(s.started) > s.window {
			s.reset()
			return false
		}

		if key == s.keys[s.index] {
			s.index++
			if s.index == len(s.keys) {
				s.state = Completed
				return true
			}
		}
		// Non-matching keys are ignored; only timeout resets.
		return false
	}

	return false
}

// Completed reports whether the sequence has latched complete.
func (s *Sequence) Completed() bool {
	return s.state == Completed
}

// State returns the machine's current state.
func (s *Sequence) State() State {
	return s.state
}

// Index returns the number of keys matched so far.
func (s *Sequence) Index() int {
	return s.index
}

// Reset returns the machine to Idle, clearing progress and the latch.
func (s *Sequence) Reset() {
	s.reset()
}

func (s *Sequence) reset() {
	s.index = 0
	s.started = time.Time{}
	s.state = Idle
}
