package models

import "encoding/json"

// Optional distinguishes a field that was not supplied from one that was
// explicitly set, including explicitly set to null. Partial updates need all
// three states: for example updateStory treats a missing publishedAt very
// differently from a null one.
type Optional[T any] struct {
	value T
	set   bool
}

// NewOptional wraps v as an explicitly supplied value.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// UnmarshalJSON marks the field as supplied whenever its key is present in
// the payload. JSON null decodes into the zero value of T (nil for pointers).
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the wrapped value; unset fields encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
