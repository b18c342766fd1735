package remap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// ParseError reports a malformed profile document. Path identifies the
// offending element within the document.
type ParseError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("profile parse error at %s: %s", e.Path, e.Message)
}

// Marshal serializes the table's three mappings as a JSON document with
// "keys", "buttons", and "axes" objects keyed by string-encoded ids.
func (t *Table) Marshal() ([]byte, error) {
	doc := []byte(`{"keys":{},"buttons":{},"axes":{}}`)

	var err error
	for _, k := range sortedIDs(t.keyToAction) {
		doc, err = sjson.SetBytes(doc, "keys."+strconv.Itoa(int(k)), t.keyToAction[k])
		if err != nil {
			return nil, fmt.Errorf("serializing key binding: %w", err)
		}
	}
	for _, b := range sortedIDs(t.buttonToAction) {
		doc, err = sjson.SetBytes(doc, "buttons."+strconv.Itoa(int(b)), t.buttonToAction[b])
		if err != nil {
			return nil, fmt.Errorf("serializing button binding: %w", err)
		}
	}
	for _, a := range sortedIDs(t.axisToAction) {
		doc, err = sjson.SetBytes(doc, "axes."+strconv.Itoa(int(a)), t.axisToAction[a])
		if err != nil {
			return nil, fmt.Errorf("serializing axis binding: %w", err)
		}
	}
	return doc, nil
}

// Unmarshal replaces the table's bindings with those in the document.
// On any malformed element the table is left untouched.
func (t *Table) Unmarshal(data []byte) error {
	if !gjson.ValidBytes(data) {
		return &ParseError{Path: "$", Message: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)

	keys, err := parseBindings(doc.Get("keys"), "keys")
	if err != nil {
		return err
	}
	buttons, err := parseBindings(doc.Get("buttons"), "buttons")
	if err != nil {
		return err
	}
	axes, err := parseBindings(doc.Get("axes"), "axes")
	if err != nil {
		return err
	}

	t.Clear()
	for id, action := range keys {
		t.MapKey(device.Key(id), action)
	}
	for id, action := range buttons {
		t.MapButton(device.Button(id), action)
	}
	for id, action := range axes {
		t.MapAxis(device.Axis(id), action)
	}
	return nil
}

// parseBindings validates one mapping object, requiring string-encoded
// integer ids and string action names.
func parseBindings(obj gjson.Result, path string) (map[int]string, error) {
	out := make(map[int]string)
	if !obj.Exists() {
		return out, nil
	}
	if !obj.IsObject() {
		return nil, &ParseError{Path: path, Message: "expected object"}
	}
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.Atoi(key.String())
		if err != nil {
			perr = &ParseError{Path: path + "." + key.String(), Message: "physical input id must be an integer"}
			return false
		}
		if value.Type != gjson.String {
			perr = &ParseError{Path: path + "." + key.String(), Message: "action name must be a string"}
			return false
		}
		out[id] = value.String()
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

// MarshalProfile serializes a profile: the table's mappings plus combo
// and sequence definitions and touch regions.
func MarshalProfile(p *Profile) ([]byte, error) {
	doc, err := p.Table.Marshal()
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "name", p.Name)
	if err != nil {
		return nil, fmt.Errorf("serializing profile name: %w", err)
	}

	comboNames := sortedDefNames(p.Combos)
	doc, _ = sjson.SetRawBytes(doc, "combos", []byte("{}"))
	for _, name := range comboNames {
		def := p.Combos[name]
		path := "combos." + escapePath(name)
		doc, err = sjson.SetBytes(doc, path+".keys", keyInts(def.Keys))
		if err != nil {
			return nil, fmt.Errorf("serializing combo %q: %w", name, err)
		}
		doc, _ = sjson.SetBytes(doc, path+".max_time_ms", def.MaxTimeMS)
	}

	seqNames := sortedDefNames(p.Sequences)
	doc, _ = sjson.SetRawBytes(doc, "sequences", []byte("{}"))
	for _, name := range seqNames {
		def := p.Sequences[name]
		path := "sequences." + escapePath(name)
		doc, err = sjson.SetBytes(doc, path+".keys", keyInts(def.Keys))
		if err != nil {
			return nil, fmt.Errorf("serializing sequence %q: %w", name, err)
		}
		doc, _ = sjson.SetBytes(doc, path+".max_time_ms", def.MaxTimeMS)
	}

	regionNames := make([]string, 0, len(p.Regions))
	for name := range p.Regions {
		regionNames = append(regionNames, name)
	}
	sort.Strings(regionNames)
	doc, _ = sjson.SetRawBytes(doc, "regions", []byte("{}"))
	for _, name := range regionNames {
		r := p.Regions[name]
		doc, err = sjson.SetBytes(doc, "regions."+escapePath(name), []float64{r.X, r.Y, r.W, r.H})
		if err != nil {
			return nil, fmt.Errorf("serializing region %q: %w", name, err)
		}
	}

	doc, err = marshalGamepads(doc, p)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// marshalGamepads appends the per-gamepad axis configs as a
// "gamepad_configs" object keyed by string-encoded gamepad id.
func marshalGamepads(doc []byte, p *Profile) ([]byte, error) {
	doc, _ = sjson.SetRawBytes(doc, "gamepad_configs", []byte("{}"))

	ids := p.Gamepads()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var err error
	for _, id := range ids {
		cfg := p.Gamepad(id)
		base := "gamepad_configs." + strconv.Itoa(int(id))

		deadzones := cfg.Deadzones()
		doc, _ = sjson.SetRawBytes(doc, base+".axis_deadzones", []byte("{}"))
		for _, a := range sortedIDs(deadzones) {
			doc, err = sjson.SetBytes(doc, base+".axis_deadzones."+strconv.Itoa(int(a)), deadzones[a])
			if err != nil {
				return nil, fmt.Errorf("serializing gamepad %d deadzones: %w", id, err)
			}
		}

		inversions := cfg.Inversions()
		doc, _ = sjson.SetRawBytes(doc, base+".axis_inversions", []byte("{}"))
		for _, a := range sortedIDs(inversions) {
			doc, err = sjson.SetBytes(doc, base+".axis_inversions."+strconv.Itoa(int(a)), inversions[a])
			if err != nil {
				return nil, fmt.Errorf("serializing gamepad %d inversions: %w", id, err)
			}
		}

		buttons := cfg.Buttons()
		doc, _ = sjson.SetRawBytes(doc, base+".button_mappings", []byte("{}"))
		for _, b := range sortedIDs(buttons) {
			doc, err = sjson.SetBytes(doc, base+".button_mappings."+strconv.Itoa(int(b)), buttons[b])
			if err != nil {
				return nil, fmt.Errorf("serializing gamepad %d buttons: %w", id, err)
			}
		}
	}
	return doc, nil
}

// UnmarshalProfile parses a profile document. On any malformed element
// it returns a ParseError and no profile.
func UnmarshalProfile(data []byte) (*Profile, error) {
	table := NewTable()
	if err := table.Unmarshal(data); err != nil {
		return nil, err
	}
	doc := gjson.ParseBytes(data)

	name := doc.Get("name")
	if name.Exists() && name.Type != gjson.String {
		return nil, &ParseError{Path: "name", Message: "profile name must be a string"}
	}

	combos, err := parseDefs(doc.Get("combos"), "combos")
	if err != nil {
		return nil, err
	}
	sequences, err := parseDefs(doc.Get("sequences"), "sequences")
	if err != nil {
		return nil, err
	}
	regions, err := parseRegions(doc.Get("regions"))
	if err != nil {
		return nil, err
	}
	gamepads, err := parseGamepads(doc.Get("gamepad_configs"))
	if err != nil {
		return nil, err
	}

	p := NewProfile(name.String())
	p.Table = table
	p.Combos = combos
	p.Sequences = sequences
	p.Regions = regions
	for _, staged := range gamepads {
		cfg := p.Gamepad(staged.id)
		for a, dz := range staged.deadzones {
			cfg.SetDeadzone(a, dz)
		}
		for a, inv := range staged.inversions {
			cfg.SetInverted(a, inv)
		}
		for b, action := range staged.buttons {
			cfg.MapButton(b, action)
		}
	}
	return p, nil
}

// stagedGamepad holds one gamepad's parsed config before any of it is
// applied; a parse failure anywhere discards the whole profile.
type stagedGamepad struct {
	id         device.GamepadID
	deadzones  map[device.Axis]float64
	inversions map[device.Axis]bool
	buttons    map[device.Button]string
}

func parseGamepads(obj gjson.Result) ([]stagedGamepad, error) {
	if !obj.Exists() {
		return nil, nil
	}
	if !obj.IsObject() {
		return nil, &ParseError{Path: "gamepad_configs", Message: "expected object"}
	}
	var out []stagedGamepad
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		path := "gamepad_configs." + key.String()
		id, err := strconv.Atoi(key.String())
		if err != nil {
			perr = &ParseError{Path: path, Message: "gamepad id must be an integer"}
			return false
		}
		if !value.IsObject() {
			perr = &ParseError{Path: path, Message: "expected object"}
			return false
		}
		staged := stagedGamepad{
			id:         device.GamepadID(id),
			deadzones:  make(map[device.Axis]float64),
			inversions: make(map[device.Axis]bool),
			buttons:    make(map[device.Button]string),
		}
		if perr = eachIntField(value.Get("axis_deadzones"), path+".axis_deadzones", gjson.Number,
			func(axisID int, v gjson.Result) {
				staged.deadzones[device.Axis(axisID)] = v.Float()
			}); perr != nil {
			return false
		}
		if perr = eachBoolField(value.Get("axis_inversions"), path+".axis_inversions",
			func(axisID int, v gjson.Result) {
				staged.inversions[device.Axis(axisID)] = v.Bool()
			}); perr != nil {
			return false
		}
		if perr = eachIntField(value.Get("button_mappings"), path+".button_mappings", gjson.String,
			func(buttonID int, v gjson.Result) {
				staged.buttons[device.Button(buttonID)] = v.String()
			}); perr != nil {
			return false
		}
		out = append(out, staged)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

// eachIntField walks an object of string-encoded integer ids to values
// of the given type, reporting the first malformed entry.
func eachIntField(obj gjson.Result, path string, want gjson.Type, visit func(id int, v gjson.Result)) *ParseError {
	if !obj.Exists() {
		return nil
	}
	if !obj.IsObject() {
		return &ParseError{Path: path, Message: "expected object"}
	}
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.Atoi(key.String())
		if err != nil {
			perr = &ParseError{Path: path + "." + key.String(), Message: "id must be an integer"}
			return false
		}
		if value.Type != want {
			perr = &ParseError{Path: path + "." + key.String(), Message: "wrong value type"}
			return false
		}
		visit(id, value)
		return true
	})
	return perr
}

// eachBoolField is eachIntField for boolean values, which gjson splits
// across two types.
func eachBoolField(obj gjson.Result, path string, visit func(id int, v gjson.Result)) *ParseError {
	if !obj.Exists() {
		return nil
	}
	if !obj.IsObject() {
		return &ParseError{Path: path, Message: "expected object"}
	}
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.Atoi(key.String())
		if err != nil {
			perr = &ParseError{Path: path + "." + key.String(), Message: "id must be an integer"}
			return false
		}
		if value.Type != gjson.True && value.Type != gjson.False {
			perr = &ParseError{Path: path + "." + key.String(), Message: "wrong value type"}
			return false
		}
		visit(id, value)
		return true
	})
	return perr
}

func parseDefs(obj gjson.Result, path string) (map[string]Def, error) {
	out := make(map[string]Def)
	if !obj.Exists() {
		return out, nil
	}
	if !obj.IsObject() {
		return nil, &ParseError{Path: path, Message: "expected object"}
	}
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		keysVal := value.Get("keys")
		if !keysVal.IsArray() {
			perr = &ParseError{Path: path + "." + name + ".keys", Message: "expected array of key codes"}
			return false
		}
		def := Def{MaxTimeMS: int(value.Get("max_time_ms").Int())}
		for i, elem := range keysVal.Array() {
			if elem.Type != gjson.Number {
				perr = &ParseError{
					Path:    fmt.Sprintf("%s.%s.keys.%d", path, name, i),
					Message: "key code must be an integer",
				}
				return false
			}
			def.Keys = append(def.Keys, device.Key(elem.Int()))
		}
		if def.MaxTimeMS <= 0 {
			perr = &ParseError{Path: path + "." + name + ".max_time_ms", Message: "must be a positive integer"}
			return false
		}
		out[name] = def
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

func parseRegions(obj gjson.Result) (map[string]Region, error) {
	out := make(map[string]Region)
	if !obj.Exists() {
		return out, nil
	}
	if !obj.IsObject() {
		return nil, &ParseError{Path: "regions", Message: "expected object"}
	}
	var perr *ParseError
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		elems := value.Array()
		if !value.IsArray() || len(elems) != 4 {
			perr = &ParseError{Path: "regions." + name, Message: "expected [x, y, w, h]"}
			return false
		}
		for i, elem := range elems {
			if elem.Type != gjson.Number {
				perr = &ParseError{
					Path:    fmt.Sprintf("regions.%s.%d", name, i),
					Message: "coordinate must be a number",
				}
				return false
			}
		}
		out[name] = Region{
			X: elems[0].Float(),
			Y: elems[1].Float(),
			W: elems[2].Float(),
			H: elems[3].Float(),
		}
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

// SaveProfile writes a profile document atomically via temp file and
// rename.
func SaveProfile(p *Profile, path string) error {
	data, err := MarshalProfile(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("creating temp profile file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing profile file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing profile file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming profile file: %w", err)
	}
	return nil
}

// LoadProfile reads and parses a profile document from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return UnmarshalProfile(data)
}

func sortedIDs[K ~int, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// escapePath escapes sjson path metacharacters in a user-supplied
// name so it addresses a single literal object key.
func escapePath(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortedDefNames(m map[string]Def) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func keyInts(keys []device.Key) []int {
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = int(k)
	}
	return out
}
