package record

import "time"

// Replayer walks a frozen event stream against a virtual clock.
// The event list is borrowed read-only; multiple replayers may share
// the same underlying recording.
type Replayer struct {
	events  []Event
	cursor  int
	playing bool
	started time.Time

	now func() time.Time
}

// NewReplayer creates a replayer over an immutable event list.
func NewReplayer(events []Event) *Replayer {
	return &Replayer{
		events: events,
		now:    time.Now,
	}
}

// Start resets the cursor and begins playback from the current time.
func (p *Replayer) Start() {
	p.playing = true
	p.cursor = 0
	p.started = p.now()
}

// Stop halts playback immediately. The cursor keeps its position.
func (p *Replayer) Stop() {
	p.playing = false
	p.started = time.Time{}
}

// Playing reports whether playback is in progress.
func (p *Replayer) Playing() bool {
	return p.playing
}

// Len returns the total number of events in the recording.
func (p *Replayer) Len() int {
	return len(p.events)
}

// Update returns every event whose offset has elapsed since Start,
// advancing the cursor past them. Each event is delivered exactly once;
// playback auto-stops when the cursor reaches the end. Safe to call
// every frame, including when not playing (returns nil).
func (p *Replayer) Update() []Event {
	if !p.playing || p.started.IsZero() {
		return nil
	}

	elapsed := p.now().Sub(p.started)

	var due []Event
	for p.cursor < len(p.events) && p.events[p.cursor].Offset <= elapsed {
		due = append(due, p.events[p.cursor])
		p.cursor++
	}

	if p.cursor >= len(p.events) {
		p.Stop()
	}

	return due
}
