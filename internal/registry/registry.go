// Package registry defines the read-only command and settings metadata that
// drives reference-manual generation.
//
// This is a Tier 1 (Leaf) package in the refgen architecture:
//   - It imports ONLY stdlib and yaml packages
//   - It does NOT import any internal packages
//
// A Registry is populated once, from a YAML manifest, and passed by value
// into the generator components. Nothing in this package mutates a loaded
// registry.
package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntry is returned when a command name or an option name
	// within a section is registered more than once.
	ErrDuplicateEntry = errors.New("duplicate registry entry")

	// ErrMissingDescription is returned when a required description is
	// absent from the manifest.
	ErrMissingDescription = errors.New("missing description")
)

// Param describes one handler parameter of a command, in declaration order.
type Param struct {
	Name string `yaml:"name"`

	// Default is the declared default value, nil when the parameter has
	// none. Defaults are reported in the usage syntax even for parameters
	// that produce no usage token.
	Default *string `yaml:"default"`

	// Elide excludes the parameter from the rendered usage syntax without
	// consuming a positional slot. This replaces the name-based convention
	// for self-reference and repeat-count parameters with an explicit
	// annotation.
	Elide bool `yaml:"elide"`
}

// Command is one invocable command entry.
type Command struct {
	Name string `yaml:"name"`

	// Doc is the raw docstring attached to the command handler, parsed by
	// the docstring package.
	Doc string `yaml:"doc"`

	Params []Param `yaml:"params"`

	// MinArgs is the minimum positional-argument count; 0 means no
	// positional argument is required.
	MinArgs int `yaml:"minargs"`

	// MaxArgs is the maximum positional-argument count; nil means
	// unbounded. A parameter whose positional index exceeds MaxArgs is
	// omitted from the usage syntax.
	MaxArgs *int `yaml:"maxargs"`

	Hidden bool `yaml:"hidden"`
	Debug  bool `yaml:"debug"`
}

// ValidValue is one enumerated value an option accepts, with an optional
// per-value description.
type ValidValue struct {
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

// Option is one configurable setting inside a section.
type Option struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	ValidValues []ValidValue `yaml:"valid_values"`
	Default     string       `yaml:"default"`
}

// Section groups related options under a named settings section. Sections
// and their options keep manifest order; the generator never resorts them.
type Section struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options"`
}

// Described reports whether any option in the section carries a
// description. Sections without described options render a heading and body
// description only, contributing nothing to the quick reference.
func (s Section) Described() bool {
	for _, opt := range s.Options {
		if opt.Description != "" {
			return true
		}
	}
	return false
}

// Registry is the full command and settings metadata for one application.
type Registry struct {
	Commands []Command `yaml:"commands"`
	Sections []Section `yaml:"settings"`
}

// Validate checks the registry invariants: command names are unique,
// option names are unique within their section, and every section carries a
// body description. Violations identify the offending entry.
func (r *Registry) Validate() error {
	cmds := make(map[string]struct{}, len(r.Commands))
	for _, cmd := range r.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("command with empty name: %w", ErrMissingDescription)
		}
		if _, ok := cmds[cmd.Name]; ok {
			return fmt.Errorf("command %q: %w", cmd.Name, ErrDuplicateEntry)
		}
		cmds[cmd.Name] = struct{}{}
	}
	for _, sect := range r.Sections {
		if sect.Description == "" {
			return fmt.Errorf("settings section %q: %w", sect.Name, ErrMissingDescription)
		}
		opts := make(map[string]struct{}, len(sect.Options))
		for _, opt := range sect.Options {
			if _, ok := opts[opt.Name]; ok {
				return fmt.Errorf("settings section %q: option %q: %w", sect.Name, opt.Name, ErrDuplicateEntry)
			}
			opts[opt.Name] = struct{}{}
		}
	}
	return nil
}
