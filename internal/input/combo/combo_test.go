package combo

import (
	"testing"
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

const (
	keyCtrl  device.Key = 306
	keyShift device.Key = 304
	keyA     device.Key = 97
)

func held(keys ...device.Key) map[device.Key]bool {
	m := make(map[device.Key]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

func TestComboSatisfiedTogether(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyShift}, 500*time.Millisecond)
	now := time.Unix(1000, 0)

	if !c.Check(held(keyCtrl, keyShift), now) {
		t.Error("chord pressed together should satisfy immediately")
	}
}

func TestComboNearSimultaneous(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyShift}, 500*time.Millisecond)
	t0 := time.Unix(1000, 0)

	// First key alone: not satisfied.
	if c.Check(held(keyCtrl), t0) {
		t.Error("partial chord should not satisfy")
	}

	// Second key arrives 100ms later: satisfied immediately.
	if !c.Check(held(keyCtrl, keyShift), t0.Add(100*time.Millisecond)) {
		t.Error("keys pressed 100ms apart within a 500ms window should satisfy")
	}
}

func TestComboFarApartNeverSatisfies(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyShift}, 500*time.Millisecond)
	t0 := time.Unix(1000, 0)

	// First key held alone for 600ms of frames.
	for ms := 0; ms <= 600; ms += 100 {
		if c.Check(held(keyCtrl), t0.Add(time.Duration(ms)*time.Millisecond)) {
			t.Fatal("partial chord should not satisfy")
		}
	}

	// Second key arrives at 600ms; the first press stamps are 600ms
	// apart, so holding both forever never satisfies.
	for ms := 600; ms <= 2000; ms += 100 {
		if c.Check(held(keyCtrl, keyShift), t0.Add(time.Duration(ms)*time.Millisecond)) {
			t.Fatalf("keys first pressed 600ms apart must never satisfy a 500ms window (at %dms)", ms)
		}
	}
}

func TestComboReleaseClearsState(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyShift}, 500*time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !c.Check(held(keyCtrl, keyShift), t0) {
		t.Fatal("chord should satisfy")
	}

	// Release one key: immediately unsatisfied.
	if c.Check(held(keyCtrl), t0.Add(50*time.Millisecond)) {
		t.Error("broken chord should not satisfy")
	}

	// The still-held key keeps its original stamp, so re-pressing only
	// the released key much later does not satisfy.
	if c.Check(held(keyCtrl, keyShift), t0.Add(2*time.Second)) {
		t.Error("stale first press on the held key should block the chord")
	}

	// Releasing everything and re-pressing the full chord satisfies
	// again with fresh stamps.
	if c.Check(held(), t0.Add(3*time.Second)) {
		t.Error("empty held set should not satisfy")
	}
	if !c.Check(held(keyCtrl, keyShift), t0.Add(4*time.Second)) {
		t.Error("re-pressed chord should satisfy with fresh stamps")
	}
}

func TestComboWindowExpiresWhileHeld(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyShift}, 500*time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !c.Check(held(keyCtrl, keyShift), t0) {
		t.Fatal("chord should satisfy at first")
	}

	// Held past the window, the spread from the earliest press grows
	// beyond the window and the chord stops reporting satisfied.
	if c.Check(held(keyCtrl, keyShift), t0.Add(600*time.Millisecond)) {
		t.Error("chord held past the window should stop satisfying")
	}
}

func TestComboReset(t *testing.T) {
	c := New([]device.Key{keyCtrl, keyA}, 500*time.Millisecond)
	t0 := time.Unix(1000, 0)

	c.Check(held(keyCtrl), t0)
	c.Reset()

	// After reset the stamps are gone; a full chord press at any later
	// time satisfies with fresh stamps.
	if !c.Check(held(keyCtrl, keyA), t0.Add(10*time.Second)) {
		t.Error("chord after Reset should satisfy with fresh stamps")
	}
}

func TestComboKeysCopy(t *testing.T) {
	keys := []device.Key{keyCtrl, keyA}
	c := New(keys, time.Second)

	got := c.Keys()
	got[0] = 1

	if c.Keys()[0] != keyCtrl {
		t.Error("Keys() must return a copy")
	}
	if c.Window() != time.Second {
		t.Errorf("Window() = %v, want 1s", c.Window())
	}
}
