package compat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStructuralMismatch reports that an input parsed as none of the
// candidate shapes.
var ErrStructuralMismatch = errors.New("input matches no candidate shape")

var errTrailingData = errors.New("trailing data after value")

// StructuralMismatchError aggregates the per-candidate decode failures of a
// FirstMatch that exhausted every candidate. The candidate errors are kept
// verbatim; no attempt is made to rank which candidate was closer.
type StructuralMismatchError struct {
	// Candidates holds one failure per candidate, in trial order.
	Candidates []error
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("%v: %v", ErrStructuralMismatch, errors.Join(e.Candidates...))
}

// Unwrap exposes the sentinel and the candidate failures to errors.Is and
// errors.As.
func (e *StructuralMismatchError) Unwrap() []error {
	return append([]error{ErrStructuralMismatch}, e.Candidates...)
}

// Match reports whether data structurally parses as dst's shape. Parsing is
// strict: unknown object keys and trailing input are both mismatches.
func Match(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// FirstMatch tries the candidates in order and returns the index of the
// first whose structural parse of data succeeds. When every candidate fails
// it returns -1 and a *StructuralMismatchError.
func FirstMatch(data []byte, candidates ...any) (int, error) {
	return firstMatch(Match, data, candidates...)
}

func firstMatch(match func([]byte, any) error, data []byte, candidates ...any) (int, error) {
	errs := make([]error, 0, len(candidates))
	for i, candidate := range candidates {
		err := match(data, candidate)
		if err == nil {
			return i, nil
		}
		errs = append(errs, err)
	}
	return -1, &StructuralMismatchError{Candidates: errs}
}
