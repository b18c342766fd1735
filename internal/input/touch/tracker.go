package touch

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Tracker maintains the set of currently active touch points.
type Tracker struct {
	touches    map[device.TouchID]device.Point
	startTimes map[device.TouchID]time.Time
}

// NewTracker creates an empty touch tracker.
func NewTracker() *Tracker {
	return &Tracker{
		touches:    make(map[device.TouchID]device.Point),
		startTimes: make(map[device.TouchID]time.Time),
	}
}

// Down records a touch placement. A reused id overwrites the prior
// entry for that id, including its start time.
func (t *Tracker) Down(id device.TouchID, pos device.Point, now time.Time) {
	t.touches[id] = pos
	t.startTimes[id] = now
}

// Up removes a touch point. Unknown ids are a no-op.
func (t *Tracker) Up(id device.TouchID) {
	delete(t.touches, id)
	delete(t.startTimes, id)
}

// Move updates the position of an active touch. Unknown ids are a no-op.
func (t *Tracker) Move(id device.TouchID, pos device.Point) {
	if _, ok := t.touches[id]; ok {
		t.touches[id] = pos
	}
}

// Position returns the current position of a touch. The second return
// is false when the id is not active.
func (t *Tracker) Position(id device.TouchID) (device.Point, bool) {
	pos, ok := t.touches[id]
	return pos, ok
}

// Active reports whether the touch id is currently down.
func (t *Tracker) Active(id device.TouchID) bool {
	_, ok := t.touches[id]
	return ok
}

// Count returns the number of active touches.
func (t *Tracker) Count() int {
	return len(t.touches)
}

// All returns a copy of all active touches and their positions.
func (t *Tracker) All() map[device.TouchID]device.Point {
	out := make(map[device.TouchID]device.Point, len(t.touches))
	for id, pos := range t.touches {
		out[id] = pos
	}
	return out
}

// StartTime returns when the touch was placed. The second return is
// false when the id is not active.
func (t *Tracker) StartTime(id device.TouchID) (time.Time, bool) {
	ts, ok := t.startTimes[id]
	return ts, ok
}
