// Package combo detects simultaneous-key chords.
//
// A combo is satisfied when every key in the chord is concurrently held
// AND the spread from the earliest first-press time to now is within
// the combo's window. A key's first-press stamp persists for as long as
// the key stays held and is cleared the moment it is released, so keys
// pressed far apart in time and then held together never satisfy the
// combo: only near-simultaneous first presses count. That tightness is
// deliberate.
package combo

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Combo is a chord of keys with a maximum co-occurrence window.
type Combo struct {
	keys   []device.Key
	window time.Duration

	// firstPress records when each chord key was first seen held.
	// Entries are dropped as soon as their key is released.
	firstPress map[device.Key]time.Time
}

// New creates a combo over the given keys with the given window.
func New(keys []device.Key, window time.Duration) *Combo {
	c := &Combo{
		keys:       make([]device.Key, len(keys)),
		window:     window,
		firstPress: make(map[device.Key]time.Time),
	}
	copy(c.keys, keys)
	return c
}

// Keys returns a copy of the chord's key codes.
func (c *Combo) Keys() []device.Key {
	out := make([]device.Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Window returns the maximum first-press spread.
func (c *Combo) Window() time.Duration {
	return c.window
}

// Check evaluates the combo against the currently held keys. It is
// meant to be called once per frame after all key transitions for the
// frame have been applied.
func (c *Combo) Check(held map[device.Key]bool, now time.Time) bool {
	complete := true
	for _, k := range c.keys {
		if held[k] {
			if _, ok := c.firstPress[k]; !ok {
				c.firstPress[k] = now
			}
		} else {
			// Releasing a chord key forgets its first press; the chord
			// must be re-pressed from scratch.
			delete(c.firstPress, k)
			complete = false
		}
	}

	if !complete {
		return false
	}

	earliest := now
	for _, ts := range c.firstPress {
		if ts.Before(earliest) {
			earliest = ts
		}
	}

	return now.Sub(earliest) <= c.window
}

// Reset clears all first-press bookkeeping unconditionally.
func (c *Combo) Reset() {
	clear(c.firstPress)
}
