package input

import (
	"github.com/kestrelgames/arcadecore/internal/input/touch"
)

// ActionState is the per-frame status of one logical action.
type ActionState struct {
	// Pressed reports whether any physical input bound to the action is
	// currently held.
	Pressed bool

	// JustPressed reports whether a bound input transitioned to pressed
	// this frame. A press-and-release within one frame sets JustPressed
	// without Pressed.
	JustPressed bool
}

// Frame is the derived input state for one game frame. It is a
// snapshot; mutating it does not affect the aggregator.
type Frame struct {
	// Actions maps logical action names to their press state.
	Actions map[string]ActionState

	// Analog maps action names to conditioned axis values in [-1, 1].
	// Values persist across frames until a new sample arrives.
	Analog map[string]float64

	// Gestures holds the gestures recognized this frame.
	Gestures []touch.Gesture

	// Combos maps registered combo names to satisfaction this frame.
	Combos map[string]bool

	// Sequences maps registered sequence names to completion. A
	// completed sequence stays true until explicitly reset.
	Sequences map[string]bool
}

// Action returns the state of the named action, zero if unbound.
func (f Frame) Action(name string) ActionState {
	return f.Actions[name]
}

// Pressed reports whether the named action is held.
func (f Frame) Pressed(name string) bool {
	return f.Actions[name].Pressed
}

// JustPressed reports whether the named action was pressed this frame.
func (f Frame) JustPressed(name string) bool {
	return f.Actions[name].JustPressed
}
