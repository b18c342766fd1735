package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// ParseError describes malformed persisted recording data. A failed
// load leaves the in-memory buffer untouched.
type ParseError struct {
	Index   int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("recording event %d: %s", e.Index, e.Message)
}

// persistedEvent is the JSON form of Event: the event kind as a string
// tag, the key code, and the offset in seconds.
type persistedEvent struct {
	Type      string  `json:"type"`
	Value     int     `json:"value"`
	Timestamp float64 `json:"timestamp"`
}

func toPersisted(e Event) persistedEvent {
	return persistedEvent{
		Type:      e.Kind.String(),
		Value:     int(e.Key),
		Timestamp: e.Offset.Seconds(),
	}
}

func fromPersisted(index int, p persistedEvent) (Event, error) {
	var kind Kind
	switch p.Type {
	case "key_press":
		kind = Press
	case "key_release":
		kind = Release
	default:
		return Event{}, &ParseError{Index: index, Message: fmt.Sprintf("unknown type %q", p.Type)}
	}
	if p.Timestamp < 0 {
		return Event{}, &ParseError{Index: index, Message: "negative timestamp"}
	}
	return Event{
		Kind:   kind,
		Key:    device.Key(p.Value),
		Offset: time.Duration(p.Timestamp * float64(time.Second)),
	}, nil
}

// Marshal serializes an event stream to its ordered JSON list form.
func Marshal(events []Event) ([]byte, error) {
	persisted := make([]persistedEvent, len(events))
	for i, e := range events {
		persisted[i] = toPersisted(e)
	}
	return json.MarshalIndent(persisted, "", "  ")
}

// Unmarshal parses an ordered JSON list into an event stream. Any
// malformed entry fails the whole call.
func Unmarshal(data []byte) ([]Event, error) {
	var persisted []persistedEvent
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("decoding recording: %w", err)
	}

	events := make([]Event, len(persisted))
	for i, p := range persisted {
		e, err := fromPersisted(i, p)
		if err != nil {
			return nil, err
		}
		events[i] = e
	}
	return events, nil
}

// Save writes the recorder's events to a file. The file is written
// atomically using a temporary file and rename.
func Save(recorder *Recorder, path string) error {
	data, err := Marshal(recorder.Events())
	if err != nil {
		return fmt.Errorf("marshaling recording: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Load reads a recording file into the recorder, replacing its buffer.
// The events are fully parsed and validated before the buffer is
// touched: on any error the recorder keeps its prior contents.
func Load(recorder *Recorder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading recording file: %w", err)
	}

	events, err := Unmarshal(data)
	if err != nil {
		return err
	}

	recorder.setEvents(events)
	return nil
}
