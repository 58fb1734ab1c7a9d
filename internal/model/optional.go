package model

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that the model may or may not have returned.
// A JSON field that is absent or null leaves Set false; any other value,
// including "" and [], sets it.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// IsZero reports absence; encoding/json uses it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value, o.Set = zero, false
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value, o.Set = v, true
	return nil
}

// HasText reports whether an optional string is present and non-empty.
func HasText(o Optional[string]) bool {
	return o.Set && o.Value != ""
}

// HasItems reports whether an optional list is present and non-empty.
func HasItems[T any](o Optional[[]T]) bool {
	return o.Set && len(o.Value) > 0
}
