package compat

// Field decodes a single field's payload straight to Current, equivalent to
// decoding a Compatible and unwrapping it in one call. It is the entry point
// for attaching compatibility to one field's decode path instead of wrapping
// the whole record:
//
//	func (a *Account) UnmarshalJSON(data []byte) error {
//		var raw struct {
//			Owner json.RawMessage `json:"owner"`
//		}
//		if err := json.Unmarshal(data, &raw); err != nil {
//			return err
//		}
//		owner, err := compat.Field[int, Label](raw.Owner)
//		if err != nil {
//			return err
//		}
//		a.Owner = owner
//		return nil
//	}
func Field[Old any, Current CompatibleWith[Old, Current]](data []byte) (Current, error) {
	var c Compatible[Old, Current]
	if err := c.UnmarshalJSON(data); err != nil {
		var zero Current
		return zero, err
	}
	return c.IntoCurrent(), nil
}

// FieldFunc is Field for version pairs whose upgrade exists only as a plain
// conversion function, with no contract implementation on either type.
func FieldFunc[Old, Current any](data []byte, convert func(Old) Current) (Current, error) {
	var (
		old     Old
		current Current
	)
	i, err := FirstMatch(data, &old, &current)
	if err != nil {
		var zero Current
		return zero, err
	}
	if i == 0 {
		return convert(old), nil
	}
	return current, nil
}
