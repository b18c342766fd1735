package remap

import (
	"fmt"
	"sort"
	"sync"
)

// Registry owns all profiles and designates one as active. Remapping
// queries resolve through the active profile.
type Registry struct {
	mu sync.RWMutex

	profiles map[string]*Profile
	active   string
}

// NewRegistry creates a registry with a single default profile, which
// starts active.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]*Profile),
	}
	r.profiles["default"] = NewProfile("default")
	r.active = "default"
	return r
}

// Create adds an empty profile under the given name and returns it.
// If a profile with that name already exists, it is replaced.
func (r *Registry) Create(name string) *Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := NewProfile(name)
	r.profiles[name] = p
	return p
}

// Register adds a profile under its own name, replacing any existing
// profile with that name.
func (r *Registry) Register(p *Profile) error {
	if p == nil {
		return fmt.Errorf("cannot register nil profile")
	}
	if p.Name == "" {
		return fmt.Errorf("cannot register profile with empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Name] = p
	return nil
}

// Get returns the named profile, if registered.
func (r *Registry) Get(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// ForGame returns the game-specific variant of a profile, keyed
// "<game>_<profile>", creating it on first use.
func (r *Registry) ForGame(game, profile string) *Profile {
	name := game + "_" + profile
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[name]; ok {
		return p
	}
	p := NewProfile(name)
	r.profiles[name] = p
	return p
}

// SetActive designates the named profile as active. It fails if the
// profile is not registered, leaving the previous profile active.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[name]; !ok {
		return fmt.Errorf("profile %q not registered", name)
	}
	r.active = name
	return nil
}

// Active returns the active profile.
func (r *Registry) Active() *Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[r.active]
}

// ActiveName returns the name of the active profile.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove deletes the named profile. The default profile cannot be
// removed; removing the active profile falls back to default.
func (r *Registry) Remove(name string) error {
	if name == "default" {
		return fmt.Errorf("cannot remove the default profile")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[name]; !ok {
		return fmt.Errorf("profile %q not registered", name)
	}
	delete(r.profiles, name)
	if r.active == name {
		r.active = "default"
	}
	return nil
}
