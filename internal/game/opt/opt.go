// Package opt provides an explicit optional value for fields that may be unset.
package opt

// Value holds either a T or nothing.
//
// Invariant: the zero Value is absent.
type Value[T any] struct {
	value T
	ok    bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
//
// Postcondition: when ok is false, v is the zero value of T.
func (o Value[T]) Get() (v T, ok bool) {
	return o.value, o.ok
}

// IsSet reports whether a value is present.
func (o Value[T]) IsSet() bool {
	return o.ok
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Value[T]) OrZero() T {
	return o.value
}
