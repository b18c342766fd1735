// Package hint provides timed tutorial input hints. Rendering is up to
// the caller; a Hint only tracks text, position, and visibility.
package hint

import (
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Hint is a tutorial prompt anchored at a screen position. A zero
// Duration keeps the hint visible until Hide is called; otherwise it
// expires Duration after Show.
type Hint struct {
	Text     string
	Position device.Point
	Duration time.Duration

	visible bool
	shownAt time.Time
}

// New creates a hint. duration may be zero for a persistent hint.
func New(text string, position device.Point, duration time.Duration) *Hint {
	return &Hint{
		Text:     text,
		Position: position,
		Duration: duration,
	}
}

// Show makes the hint visible and starts its expiry timer.
func (h *Hint) Show(now time.Time) {
	h.visible = true
	h.shownAt = now
}

// Hide makes the hint invisible.
func (h *Hint) Hide() {
	h.visible = false
	h.shownAt = time.Time{}
}

// Visible reports whether the hint should be drawn at the given time,
// hiding it permanently once its duration has elapsed.
func (h *Hint) Visible(now time.Time) bool {
	if h.visible && h.Duration > 0 && !h.shownAt.IsZero() {
		if now.Sub(h.shownAt) >= h.Duration {
			h.visible = false
		}
	}
	return h.visible
}
