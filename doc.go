// Package compat lets a persisted data shape evolve across versions without
// a version tag in the payload.
//
// A consumer defines the current representation and the old one, supplies a
// single old-to-current conversion, and wraps the field (or the whole record)
// in a [Compatible] adapter. At decode time the adapter structurally matches
// the input against the old shape first and the current shape second,
// upgrades whichever matched, and from then on behaves as if only the current
// shape ever existed. Encoding always re-emits the current shape, so stored
// data self-heals on the next write.
//
// # The conversion contract
//
// A pair declares its upgrade exactly once, in either direction:
//
//	type Legacy struct {
//		A int `json:"a"`
//	}
//
//	type Record struct {
//		A string `json:"a"`
//		B int    `json:"b"`
//	}
//
//	func (Record) FromOld(old Legacy) Record {
//		return Record{A: strconv.Itoa(old.A)}
//	}
//
// [CompatibleWith] is the producing half and [CompatibleTo] the converting
// half; the free functions [IntoCurrent] and [FromOld] each derive one half
// from the other, so implementing both is never necessary.
//
// # Decoding
//
//	var c compat.Compatible[Legacy, Record]
//	if err := json.Unmarshal(data, &c); err != nil {
//		return err
//	}
//	record := c.IntoCurrent()
//
// For a single field, [Field] collapses decode and unwrap into one call, and
// the compatgen tool (cmd/compatgen) generates an UnmarshalJSON hook so call
// sites never mention the adapter at all.
//
// # Structural matching and its hazard
//
// There is no framing, tag, or version marker on the wire: the bytes are
// exactly the old encoding or exactly the current encoding, and candidates
// are tried in that fixed order with strict field checking. If the old shape
// is a structural subset of the current encoding, a genuinely current payload
// is accepted as old and silently loses the fields the old shape does not
// know about. Choosing structurally distinguishable version pairs is the
// schema author's responsibility.
//
// # Nesting
//
// The adapter encodes and decodes purely through its held case, so it
// satisfies the same wire contract as any plain type and can stand as the
// old parameter of an outer adapter:
//
//	compat.Compatible[compat.Compatible[V1, V2], V3]
//
// models a three-version chain with no extra machinery.
package compat
