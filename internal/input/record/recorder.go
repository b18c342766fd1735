package record

import (
	"sync"
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Recorder captures a timestamped stream of key events.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	started   time.Time
	events    []Event

	now func() time.Time
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		now: time.Now,
	}
}

// Start clears the event buffer and begins a new recording session.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recording = true
	r.events = nil
	r.started = r.now()
}

// Stop ends the recording session. The captured events are kept.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recording = false
	r.started = time.Time{}
}

// Recording reports whether a session is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// RecordPress appends a key press stamped relative to the recording
// start. Does nothing when not recording.
func (r *Recorder) RecordPress(key device.Key) {
	r.record(Press, key, -1)
}

// RecordPressAt appends a key press with a caller-provided offset.
func (r *Recorder) RecordPressAt(key device.Key, offset time.Duration) {
	r.record(Press, key, offset)
}

// RecordRelease appends a key release stamped relative to the recording
// start. Does nothing when not recording.
func (r *Recorder) RecordRelease(key device.Key) {
	r.record(Release, key, -1)
}

// RecordReleaseAt appends a key release with a caller-provided offset.
func (r *Recorder) RecordReleaseAt(key device.Key, offset time.Duration) {
	r.record(Release, key, offset)
}

func (r *Recorder) record(kind Kind, key device.Key, offset time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return
	}
	if offset < 0 {
		offset = r.now().Sub(r.started)
	}
	r.events = append(r.events, Event{Kind: kind, Key: key, Offset: offset})
}

// Events returns a copy of the recorded event stream.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// setEvents replaces the buffer wholesale. Used by persistence loads,
// which stage and validate before calling.
func (r *Recorder) setEvents(events []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = events
}
