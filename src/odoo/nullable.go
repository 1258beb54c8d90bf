// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import "encoding/json"

// Nullable holds a field that Odoo may send as a value of type T or as a
// sentinel of another type (usually false) when the field is empty.
//
// Decoding never fails: any payload that does not decode into T, including
// null and genuinely malformed values, leaves Valid false. A field missing
// from the object is also left invalid. Use it only on fields where treating
// bad data as absent is acceptable.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Some returns a valid Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	var v T
	if string(data) == "null" || json.Unmarshal(data, &v) != nil {
		*n = Nullable[T]{}
		return nil
	}
	*n = Nullable[T]{Value: v, Valid: true}
	return nil
}

// MarshalJSON implements [json.Marshaler]. An invalid value is written as
// false, the same sentinel the server uses.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("false"), nil
	}
	return json.Marshal(n.Value)
}

// Get returns the value and whether it is present.
func (n Nullable[T]) Get() (T, bool) { return n.Value, n.Valid }

// OrElse returns the value if present, def otherwise.
func (n Nullable[T]) OrElse(def T) T {
	if n.Valid {
		return n.Value
	}
	return def
}
