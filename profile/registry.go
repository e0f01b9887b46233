// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package profile

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"
)

// DefaultName is the profile matching hwplane.DefaultLimits.
const DefaultName = "anniedale"

//go:embed profiles/*.yaml
var builtinFS embed.FS

// Registry holds named profiles.
//
// Example:
//
//	p, err := profile.Load("/vendor/etc/planes.yaml")
//	if err != nil { ... }
//	profile.Register(p)
//
//	p, ok := profile.Lookup("my-soc")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Profile
}

// globalRegistry is the default registry, seeded with the built-in profiles.
var globalRegistry = mustBuiltinRegistry()

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Profile),
	}
}

func mustBuiltinRegistry() *Registry {
	r := NewRegistry()
	files, err := builtinFS.ReadDir("profiles")
	if err != nil {
		panic(fmt.Sprintf("profile: reading built-in profiles: %v", err))
	}
	for _, f := range files {
		data, err := builtinFS.ReadFile(path.Join("profiles", f.Name()))
		if err != nil {
			panic(fmt.Sprintf("profile: reading %s: %v", f.Name(), err))
		}
		p, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("profile: built-in %s: %v", f.Name(), err))
		}
		r.Register(p)
	}
	return r
}

// Register adds a profile to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(p *Profile) {
	globalRegistry.Register(p)
}

// Lookup returns a copy of the named profile from the global registry.
func Lookup(name string) (*Profile, bool) {
	return globalRegistry.Lookup(name)
}

// Names returns all profile names in the global registry, sorted.
func Names() []string {
	return globalRegistry.Names()
}

// Register adds a profile to this registry.
func (r *Registry) Register(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Profile)
	}
	entry := *p
	r.entries[p.Name] = &entry
}

// Lookup returns a copy of the named profile.
func (r *Registry) Lookup(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Names returns all profile names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
