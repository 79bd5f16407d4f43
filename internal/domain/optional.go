package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state input field: absent (leave alone), explicitly null
// (clear) or carrying a value (set). The zero value is absent.
//
// When used as a struct field decoded by encoding/json, a missing key leaves
// the field absent while a literal null marks it as null.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional that was explicitly cleared.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Unset returns an absent Optional.
func Unset[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether the field was present at all, null included.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// HasValue reports whether the field carries a non-null value.
func (o Optional[T]) HasValue() bool { return o.set && !o.null }

// Value returns the carried value; the zero value when absent or null.
func (o Optional[T]) Value() T { return o.value }

// Ptr returns a pointer to the value, or nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.HasValue() {
		return nil
	}
	v := o.value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// is present, which is what distinguishes absent from null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements json.Marshaler. Absent and null both encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
