// Package record provides input recording and timed playback.
//
// A Recorder captures key press/release events with offsets relative to
// the recording start. The finished event list is handed to one or more
// Replayers, which walk it against a virtual clock: each Update call
// releases every event whose offset has elapsed, exactly once, in
// order, auto-stopping at the end.
//
// # Persistence
//
// Recordings serialize to an ordered JSON list of
// {"type", "value", "timestamp"} objects and can also be archived by
// name in a SQLite store. Malformed persisted data fails the load and
// leaves in-memory state untouched.
package record
