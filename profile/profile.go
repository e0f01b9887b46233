// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package profile loads hardware plane limits for a display controller
// generation from YAML documents.
//
// A profile document names the generation and overrides any subset of the
// limits; omitted limits keep the reference values:
//
//	name: my-soc
//	limits:
//	  primary_max_stride: 16384
//	  overlay_max_width: 4096
//	  overlay_max_height: 4096
//
// Built-in profiles are available through Lookup.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/hwplane"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyInput is returned when a profile document is empty.
	ErrEmptyInput = errors.New("profile: empty document")

	// ErrMissingName is returned when a profile document has no name.
	ErrMissingName = errors.New("profile: missing name")
)

// Profile is a named set of plane limits.
type Profile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Limits      hwplane.Limits `yaml:"limits"`
}

// Validator returns a validator enforcing the profile limits.
func (p *Profile) Validator(opts ...hwplane.Option) (*hwplane.Validator, error) {
	v, err := hwplane.NewWithLimits(p.Limits, opts...)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return v, nil
}

// Parse decodes a profile document. Unknown keys are rejected so that a
// misspelled limit does not silently keep its default.
func Parse(data []byte) (*Profile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	p := &Profile{Limits: hwplane.DefaultLimits()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("profile: failed to parse: %w", err)
	}

	if p.Name == "" {
		return nil, ErrMissingName
	}
	if err := p.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return p, nil
}

// Load reads and parses the profile document at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return Parse(data)
}

// Marshal encodes p as a profile document.
func Marshal(p *Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("profile: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("profile: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Resolve returns the registered profile named ref, or else loads ref as a
// profile document path. An empty ref selects DefaultName.
func Resolve(ref string) (*Profile, error) {
	if ref == "" {
		ref = DefaultName
	}
	if p, ok := Lookup(ref); ok {
		return p, nil
	}
	return Load(ref)
}
