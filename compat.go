package compat

import "encoding/json"

// CompatibleWith is the producing half of the conversion contract: the
// current version of a schema implements it to state that it can be built
// from its previous version.
//
// FromOld must not read its receiver. Go interfaces have no associated
// functions, so the method is invoked on the zero Current value.
type CompatibleWith[Old, Current any] interface {
	FromOld(old Old) Current
}

// CompatibleTo is the mirror half of the contract, implemented by the old
// version itself.
type CompatibleTo[Current any] interface {
	IntoCurrent() Current
}

// IntoCurrent upgrades old through Current's CompatibleWith implementation.
// Together with FromOld it makes the two contract halves interchangeable: a
// version pair defines its conversion exactly once, in whichever direction
// is more natural, and derives the other for free.
func IntoCurrent[Old any, Current CompatibleWith[Old, Current]](old Old) Current {
	var current Current
	return current.FromOld(old)
}

// FromOld upgrades old through its own CompatibleTo implementation, deriving
// the producing direction instead.
func FromOld[Current any, Old CompatibleTo[Current]](old Old) Current {
	return old.IntoCurrent()
}

// alt is the two-case structural union behind the adapter. Exactly one
// pointer is set once constructed.
type alt[Old, Current any] struct {
	old     *Old
	current *Current
}

// Compatible adapts a persisted value that may still be stored in its Old
// shape. Decoding tries Old first and Current second, accepts the first
// structural match, and immediately upgrades, so an adapter is never
// observed holding Old. Encoding delegates to the held case with no framing
// of its own.
//
// The zero Compatible holds neither case; it unwraps and encodes as the zero
// Current.
type Compatible[Old any, Current CompatibleWith[Old, Current]] struct {
	alt alt[Old, Current]
}

// Wrap wraps an already-current value. This is the only way besides decoding
// to obtain a non-zero adapter.
func Wrap[Old any, Current CompatibleWith[Old, Current]](current Current) Compatible[Old, Current] {
	return Compatible[Old, Current]{alt: alt[Old, Current]{current: &current}}
}

// IntoCurrent unwraps the adapter, upgrading if it still holds Old.
// Conversion is total, so there is no failure path.
func (c Compatible[Old, Current]) IntoCurrent() Current {
	switch {
	case c.alt.old != nil:
		return IntoCurrent[Old, Current](*c.alt.old)
	case c.alt.current != nil:
		return *c.alt.current
	}
	var zero Current
	return zero
}

// MakeCurrent collapses the adapter to its Current case. It is idempotent,
// and decoding already applies it, so it only matters for adapters that were
// built by hand around an old value.
func (c Compatible[Old, Current]) MakeCurrent() Compatible[Old, Current] {
	if c.alt.old == nil {
		return c
	}
	current := IntoCurrent[Old, Current](*c.alt.old)
	return Compatible[Old, Current]{alt: alt[Old, Current]{current: &current}}
}

// MarshalJSON encodes whichever case the adapter holds, byte-identical to
// encoding that case directly. The absence of framing is what lets an
// adapter stand as the Old shape of an outer adapter.
func (c Compatible[Old, Current]) MarshalJSON() ([]byte, error) {
	switch {
	case c.alt.old != nil:
		return json.Marshal(*c.alt.old)
	case c.alt.current != nil:
		return json.Marshal(*c.alt.current)
	}
	var zero Current
	return json.Marshal(zero)
}

// UnmarshalJSON structurally matches data against Old then Current and
// normalizes the result, so callers only ever see the Current case.
func (c *Compatible[Old, Current]) UnmarshalJSON(data []byte) error {
	var (
		old     Old
		current Current
	)
	i, err := FirstMatch(data, &old, &current)
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
