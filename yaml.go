package compat

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// MatchYAML is Match over the YAML engine. KnownFields gives the same
// strictness DisallowUnknownFields gives JSON.
func MatchYAML(data []byte, dst any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(dst)
}

// FirstMatchYAML is FirstMatch over the YAML engine.
func FirstMatchYAML(data []byte, candidates ...any) (int, error) {
	return firstMatch(MatchYAML, data, candidates...)
}

// MarshalYAML encodes the held case with no framing, mirroring MarshalJSON.
func (c Compatible[Old, Current]) MarshalYAML() (any, error) {
	switch {
	case c.alt.old != nil:
		return *c.alt.old, nil
	case c.alt.current != nil:
		return *c.alt.current, nil
	}
	var zero Current
	return zero, nil
}

// UnmarshalYAML re-serializes the node so each candidate can be tried with
// strict field checking, which node.Decode does not expose.
func (c *Compatible[Old, Current]) UnmarshalYAML(node *yaml.Node) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	var (
		old     Old
		current Current
	)
	i, err := FirstMatchYAML(data, &old, &current)
	if err != nil {
		return err
	}
	if i == 0 {
		c.alt = alt[Old, Current]{old: &old}
	} else {
		c.alt = alt[Old, Current]{current: &current}
	}
	*c = c.MakeCurrent()
	return nil
}
