package remap

import (
	"github.com/kestrelgames/arcadecore/internal/input/axis"
	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Def describes a combo or sequence: the keys involved and the time
// window in milliseconds.
type Def struct {
	Keys      []device.Key
	MaxTimeMS int
}

// Region is a rectangular touch area in screen coordinates. A tap whose
// position falls inside a named region triggers that region's action.
type Region struct {
	X, Y, W, H float64
}

// Contains reports whether p falls inside the region. The left and top
// edges are inclusive, the right and bottom edges exclusive.
func (r Region) Contains(p device.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Profile is a named remapping table together with per-gamepad axis
// configuration, combo/sequence definitions, and touch regions.
type Profile struct {
	Name      string
	Table     *Table
	Combos    map[string]Def
	Sequences map[string]Def
	Regions   map[string]Region

	gamepads        map[device.GamepadID]*axis.Config
	defaultDeadzone float64
}

// NewProfile creates an empty profile with the given name.
func NewProfile(name string) *Profile {
	return &Profile{
		Name:            name,
		Table:           NewTable(),
		Combos:          make(map[string]Def),
		Sequences:       make(map[string]Def),
		Regions:         make(map[string]Region),
		gamepads:        make(map[device.GamepadID]*axis.Config),
		defaultDeadzone: axis.DefaultDeadzone,
	}
}

// SetDefaultDeadzone sets the fallback deadzone seeded into every
// gamepad config, existing and future, for axes without an explicit
// setting.
func (p *Profile) SetDefaultDeadzone(deadzone float64) {
	p.defaultDeadzone = deadzone
	for _, cfg := range p.gamepads {
		cfg.SetDefaultDeadzone(deadzone)
	}
}

// Gamepad returns the axis configuration for the given gamepad,
// creating a default one on first use.
func (p *Profile) Gamepad(id device.GamepadID) *axis.Config {
	if p.gamepads == nil {
		p.gamepads = make(map[device.GamepadID]*axis.Config)
	}
	cfg, ok := p.gamepads[id]
	if !ok {
		cfg = axis.NewConfig(id)
		cfg.SetDefaultDeadzone(p.defaultDeadzone)
		p.gamepads[id] = cfg
	}
	return cfg
}

// Gamepads returns the ids with explicit axis configuration.
func (p *Profile) Gamepads() []device.GamepadID {
	ids := make([]device.GamepadID, 0, len(p.gamepads))
	for id := range p.gamepads {
		ids = append(ids, id)
	}
	return ids
}
