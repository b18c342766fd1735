package remap

import (
	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Table is a bidirectional mapping between physical inputs and logical
// action names. Each physical input maps to exactly one action; one
// action may be bound to many physical inputs. Rebinding a physical
// input removes it from its old action's reverse set in the same call.
type Table struct {
	keyToAction    map[device.Key]string
	buttonToAction map[device.Button]string
	axisToAction   map[device.Axis]string

	actionToKeys    map[string]map[device.Key]struct{}
	actionToButtons map[string]map[device.Button]struct{}
	actionToAxes    map[string]map[device.Axis]struct{}
}

// NewTable creates an empty remapping table.
func NewTable() *Table {
	t := &Table{}
	t.Clear()
	return t
}

// Clear removes all bindings.
func (t *Table) Clear() {
	t.keyToAction = make(map[device.Key]string)
	t.buttonToAction = make(map[device.Button]string)
	t.axisToAction = make(map[device.Axis]string)
	t.actionToKeys = make(map[string]map[device.Key]struct{})
	t.actionToButtons = make(map[string]map[device.Button]struct{})
	t.actionToAxes = make(map[string]map[device.Axis]struct{})
}

// MapKey binds key to action. If the key was previously bound to a
// different action, that binding is removed first.
func (t *Table) MapKey(k device.Key, action string) {
	if old, ok := t.keyToAction[k]; ok {
		delete(t.actionToKeys[old], k)
		if len(t.actionToKeys[old]) == 0 {
			delete(t.actionToKeys, old)
		}
	}
	t.keyToAction[k] = action
	if t.actionToKeys[action] == nil {
		t.actionToKeys[action] = make(map[device.Key]struct{})
	}
	t.actionToKeys[action][k] = struct{}{}
}

// MapButton binds a gamepad button to action, rebinding if needed.
func (t *Table) MapButton(b device.Button, action string) {
	if old, ok := t.buttonToAction[b]; ok {
		delete(t.actionToButtons[old], b)
		if len(t.actionToButtons[old]) == 0 {
			delete(t.actionToButtons, old)
		}
	}
	t.buttonToAction[b] = action
	if t.actionToButtons[action] == nil {
		t.actionToButtons[action] = make(map[device.Button]struct{})
	}
	t.actionToButtons[action][b] = struct{}{}
}

// MapAxis binds an axis to action, rebinding if needed.
func (t *Table) MapAxis(a device.Axis, action string) {
	if old, ok := t.axisToAction[a]; ok {
		delete(t.actionToAxes[old], a)
		if len(t.actionToAxes[old]) == 0 {
			delete(t.actionToAxes, old)
		}
	}
	t.axisToAction[a] = action
	if t.actionToAxes[action] == nil {
		t.actionToAxes[action] = make(map[device.Axis]struct{})
	}
	t.actionToAxes[action][a] = struct{}{}
}

// ActionForKey returns the action bound to k, if any.
func (t *Table) ActionForKey(k device.Key) (string, bool) {
	action, ok := t.keyToAction[k]
	return action, ok
}

// ActionForButton returns the action bound to b, if any.
func (t *Table) ActionForButton(b device.Button) (string, bool) {
	action, ok := t.buttonToAction[b]
	return action, ok
}

// ActionForAxis returns the action bound to a, if any.
func (t *Table) ActionForAxis(a device.Axis) (string, bool) {
	action, ok := t.axisToAction[a]
	return action, ok
}

// KeysForAction returns every key bound to action.
func (t *Table) KeysForAction(action string) []device.Key {
	keys := make([]device.Key, 0, len(t.actionToKeys[action]))
	for k := range t.actionToKeys[action] {
		keys = append(keys, k)
	}
	return keys
}

// ButtonsForAction returns every button bound to action.
func (t *Table) ButtonsForAction(action string) []device.Button {
	buttons := make([]device.Button, 0, len(t.actionToButtons[action]))
	for b := range t.actionToButtons[action] {
		buttons = append(buttons, b)
	}
	return buttons
}

// AxesForAction returns every axis bound to action.
func (t *Table) AxesForAction(action string) []device.Axis {
	axes := make([]device.Axis, 0, len(t.actionToAxes[action]))
	for a := range t.actionToAxes[action] {
		axes = append(axes, a)
	}
	return axes
}

// Keys returns a copy of the key bindings.
func (t *Table) Keys() map[device.Key]string {
	out := make(map[device.Key]string, len(t.keyToAction))
	for k, v := range t.keyToAction {
		out[k] = v
	}
	return out
}

// Buttons returns a copy of the button bindings.
func (t *Table) Buttons() map[device.Button]string {
	out := make(map[device.Button]string, len(t.buttonToAction))
	for b, v := range t.buttonToAction {
		out[b] = v
	}
	return out
}

// Axes returns a copy of the axis bindings.
func (t *Table) Axes() map[device.Axis]string {
	out := make(map[device.Axis]string, len(t.axisToAction))
	for a, v := range t.axisToAction {
		out[a] = v
	}
	return out
}
