package utils

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Optional carries a value that may be absent, present, or present as null.
// The zero value is absent. Decoding a JSON document only marks the fields
// whose keys appear in it.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns a present Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Get returns the held value; ok is false when absent or null.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// ColumnValue returns the value to write to a column, nil for null.
func (o Optional[T]) ColumnValue() any {
	if o.null {
		return nil
	}
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
