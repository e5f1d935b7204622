// Package mapping defines the optional YAML pair file that pins which
// discovered pairs compatgen generates hooks for, and with which engines.
//
//	version: "1"
//	engines: [json, yaml]
//	pairs:
//	  - current: userprofile.Profile
//	    old: LegacyProfile
//	  - current: userprofile.UserID
//	    old: int64
//
// The current reference is package-qualified; old, when given, is spelled
// exactly as the FromOld parameter appears in the package and is checked
// against what discovery found. A file with no pairs section selects every
// discovered pair.
package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the only pair file schema version in existence.
const Version = "1"

// Engine names accepted in the engines list.
const (
	EngineJSON = "json"
	EngineYAML = "yaml"
)

// File is a parsed pair file.
type File struct {
	Version string   `yaml:"version"`
	Engines []string `yaml:"engines,omitempty"`
	Pairs   []Pair   `yaml:"pairs,omitempty"`
}

// Pair selects one compatibility pair by its current type.
type Pair struct {
	Current string `yaml:"current"`
	Old     string `yaml:"old,omitempty"`
}

// Load reads and validates a pair file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pair file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &f, nil
}

// Validate checks the file's version, engines, and pair references.
func (f *File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("unsupported version %q (want %q)", f.Version, Version)
	}

	for _, engine := range f.Engines {
		if engine != EngineJSON && engine != EngineYAML {
			return fmt.Errorf("unknown engine %q", engine)
		}
	}

	for i, p := range f.Pairs {
		if p.Current == "" {
			return fmt.Errorf("pair %d: current is required", i)
		}
		if !strings.Contains(p.Current, ".") {
			return fmt.Errorf("pair %d: current %q must be package-qualified", i, p.Current)
		}
	}

	return nil
}

// YAML reports whether the file asks for the YAML engine hook.
func (f *File) YAML() bool {
	for _, engine := range f.Engines {
		if engine == EngineYAML {
			return true
		}
	}
	return false
}

// Find returns the pair selecting the given package-qualified current type.
func (f *File) Find(ref string) (Pair, bool) {
	for _, p := range f.Pairs {
		if p.Current == ref {
			return p, true
		}
	}
	return Pair{}, false
}

// Selects reports whether the file selects ref. A file with no pairs selects
// everything.
func (f *File) Selects(ref string) bool {
	if len(f.Pairs) == 0 {
		return true
	}
	_, ok := f.Find(ref)
	return ok
}
