package input

import (
	"fmt"
	"math"
	"time"

	"github.com/kestrelgames/arcadecore/internal/config"
	"github.com/kestrelgames/arcadecore/internal/input/combo"
	"github.com/kestrelgames/arcadecore/internal/input/device"
	"github.com/kestrelgames/arcadecore/internal/input/record"
	"github.com/kestrelgames/arcadecore/internal/input/remap"
	"github.com/kestrelgames/arcadecore/internal/input/sequence"
	"github.com/kestrelgames/arcadecore/internal/input/touch"
)

// Aggregator turns batches of raw device events into per-frame derived
// state. It resolves physical inputs through the active profile of the
// registry it was constructed with.
//
// Not safe for concurrent use: the external loop drives Update once per
// frame, and profile or matcher mutations happen between frames.
type Aggregator struct {
	registry   *remap.Registry
	recognizer *touch.Recognizer

	combos    map[string]*combo.Combo
	sequences map[string]*sequence.Sequence

	keys    *keyState
	buttons *buttonState
	analog  map[string]float64

	recorder *record.Recorder

	defaultDeadzone float64

	now func() time.Time
}

// NewAggregator creates an aggregator resolving through registry using
// the given tuning thresholds. The gamepad default deadzone from
// tuning is seeded into the active profile and into every profile
// later activated through ApplyProfile.
func NewAggregator(registry *remap.Registry, tuning config.Tuning) *Aggregator {
	a := &Aggregator{
		registry:        registry,
		recognizer:      touch.NewRecognizer(recognizerConfig(tuning.Gesture)),
		combos:          make(map[string]*combo.Combo),
		sequences:       make(map[string]*sequence.Sequence),
		keys:            newKeyState(),
		buttons:         newButtonState(),
		analog:          make(map[string]float64),
		defaultDeadzone: tuning.Gamepad.DefaultDeadzone,
		now:             time.Now,
	}
	if p := registry.Active(); p != nil {
		p.SetDefaultDeadzone(a.defaultDeadzone)
	}
	return a
}

func recognizerConfig(g config.GestureTuning) touch.Config {
	return touch.Config{
		TapMaxDuration:    g.TapMaxDuration(),
		TapMaxDistance:    g.TapMaxPx,
		LongPressDuration: g.LongPressDuration(),
		SwipeMinDistance:  g.SwipeMinPx,
		SwipeMaxDuration:  g.SwipeMaxDuration(),
		PinchMinDistance:  g.PinchMinPx,
		MoveEpsilon:       g.MoveEpsilonPx,
	}
}

// Registry returns the profile registry the aggregator resolves through.
func (a *Aggregator) Registry() *remap.Registry {
	return a.registry
}

// Recognizer returns the aggregator's gesture recognizer.
func (a *Aggregator) Recognizer() *touch.Recognizer {
	return a.recognizer
}

// RegisterCombo registers a named chord matcher, replacing any combo of
// the same name.
func (a *Aggregator) RegisterCombo(name string, keys []device.Key, window time.Duration) {
	a.combos[name] = combo.New(keys, window)
}

// RegisterSequence registers a named ordered-key matcher, replacing any
// sequence of the same name.
func (a *Aggregator) RegisterSequence(name string, keys []device.Key, window time.Duration) {
	a.sequences[name] = sequence.New(keys, window)
}

// ResetSequence unlatches the named sequence back to idle.
func (a *Aggregator) ResetSequence(name string) {
	if s, ok := a.sequences[name]; ok {
		s.Reset()
	}
}

// ResetCombo clears the named combo's first-press stamps.
func (a *Aggregator) ResetCombo(name string) {
	if c, ok := a.combos[name]; ok {
		c.Reset()
	}
}

// ApplyProfile activates the named profile and rebuilds the matcher set
// from its combo and sequence definitions. On failure the previous
// profile and matchers stay in place.
func (a *Aggregator) ApplyProfile(name string) error {
	if err := a.registry.SetActive(name); err != nil {
		return fmt.Errorf("applying profile: %w", err)
	}
	p := a.registry.Active()
	p.SetDefaultDeadzone(a.defaultDeadzone)

	a.combos = make(map[string]*combo.Combo, len(p.Combos))
	for defName, def := range p.Combos {
		a.combos[defName] = combo.New(def.Keys, time.Duration(def.MaxTimeMS)*time.Millisecond)
	}
	a.sequences = make(map[string]*sequence.Sequence, len(p.Sequences))
	for defName, def := range p.Sequences {
		a.sequences[defName] = sequence.New(def.Keys, time.Duration(def.MaxTimeMS)*time.Millisecond)
	}
	a.analog = make(map[string]float64)
	return nil
}

// AttachRecorder feeds key transitions into r while it is recording.
// Pass nil to detach.
func (a *Aggregator) AttachRecorder(r *record.Recorder) {
	a.recorder = r
}

// KeyPressed reports whether the physical key is currently held.
func (a *Aggregator) KeyPressed(k device.Key) bool {
	return a.keys.pressed[k]
}

// Update applies one frame's raw events in device order, then derives
// the frame state. It must be called once per frame, including with an
// empty batch, so combo windows and sequence timeouts advance.
func (a *Aggregator) Update(batch []device.Event) Frame {
	now := a.now()
	a.keys.beginFrame()
	a.buttons.beginFrame()
	profile := a.registry.Active()

	// Phase 1: apply raw transitions. No derived query happens until
	// every event of the batch has been applied.
	for _, ev := range batch {
		ts := ev.Timestamp
		if ts.IsZero() {
			ts = now
		}
		switch ev.Type {
		case device.EventKeyDown:
			if a.keys.press(ev.Key) {
				for _, s := range a.sequences {
					s.Advance(ev.Key, ts)
				}
				if a.recorder != nil {
					a.recorder.RecordPress(ev.Key)
				}
			}
		case device.EventKeyUp:
			if a.keys.release(ev.Key) && a.recorder != nil {
				a.recorder.RecordRelease(ev.Key)
			}
		case device.EventButtonDown:
			a.buttons.press(buttonKey{gamepad: ev.Gamepad, button: ev.Button})
		case device.EventButtonUp:
			a.buttons.release(buttonKey{gamepad: ev.Gamepad, button: ev.Button})
		case device.EventTouchDown:
			a.recognizer.TouchDownAt(ev.Touch, ev.Pos, ts)
		case device.EventTouchMove:
			a.recognizer.TouchMove(ev.Touch, ev.Pos)
		case device.EventTouchUp:
			a.recognizer.TouchUpAt(ev.Touch, ts)
		case device.EventAxisMotion:
			a.applyAxis(profile, ev)
		}
	}

	// Phase 2: derive.
	frame := Frame{
		Actions:   make(map[string]ActionState),
		Analog:    make(map[string]float64, len(a.analog)),
		Gestures:  a.recognizer.Gestures(),
		Combos:    make(map[string]bool, len(a.combos)),
		Sequences: make(map[string]bool, len(a.sequences)),
	}

	for k := range a.keys.pressed {
		if action, ok := profile.Table.ActionForKey(k); ok {
			st := frame.Actions[action]
			st.Pressed = true
			frame.Actions[action] = st
		}
	}
	for k := range a.keys.justPressed {
		if action, ok := profile.Table.ActionForKey(k); ok {
			st := frame.Actions[action]
			st.JustPressed = true
			frame.Actions[action] = st
		}
	}
	for b := range a.buttons.pressed {
		if action, ok := a.buttonAction(profile, b); ok {
			st := frame.Actions[action]
			st.Pressed = true
			frame.Actions[action] = st
		}
	}
	for b := range a.buttons.justPressed {
		if action, ok := a.buttonAction(profile, b); ok {
			st := frame.Actions[action]
			st.JustPressed = true
			frame.Actions[action] = st
		}
	}

	for action, value := range a.analog {
		frame.Analog[action] = value
	}

	// Taps inside a named region surface as that region's just-pressed
	// action.
	for _, g := range frame.Gestures {
		if g.Type != touch.Tap {
			continue
		}
		for name, region := range profile.Regions {
			if region.Contains(g.Position) {
				st := frame.Actions[name]
				st.JustPressed = true
				frame.Actions[name] = st
			}
		}
	}

	for name, c := range a.combos {
		frame.Combos[name] = c.Check(a.keys.pressed, now)
	}
	for name, s := range a.sequences {
		frame.Sequences[name] = s.Completed()
	}
	return frame
}

// applyAxis conditions a raw sample through the profile's per-gamepad
// config and stores it under the axis's bound action.
func (a *Aggregator) applyAxis(profile *remap.Profile, ev device.Event) {
	raw := math.Max(-1, math.Min(1, ev.Value))
	cfg := profile.Gamepad(ev.Gamepad)
	value := cfg.Condition(ev.Axis, raw)
	if action, ok := profile.Table.ActionForAxis(ev.Axis); ok {
		a.analog[action] = value
	}
}

// buttonAction resolves a gamepad button through the profile table
// first, then the per-gamepad button bindings.
func (a *Aggregator) buttonAction(profile *remap.Profile, b buttonKey) (string, bool) {
	if action, ok := profile.Table.ActionForButton(b.button); ok {
		return action, true
	}
	return profile.Gamepad(b.gamepad).ActionForButton(b.button)
}
