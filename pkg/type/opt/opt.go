// Released under an MIT license. See LICENSE.

// Package opt provides the optional value type.
package opt

import (
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "option"

// T (opt) holds a value of type V, or nothing. An opt is truthy when it
// holds a value and that value is truthy. An empty opt is always falsy.
type T[V truth.I] struct {
	v  V
	ok bool
}

// Some creates an opt holding the value v.
func Some[V truth.I](v V) T[V] {
	return T[V]{v: v, ok: true}
}

// None creates an empty opt.
func None[V truth.I]() T[V] {
	return T[V]{}
}

// And is the truthy-and operation: it returns an opt holding u if v is
// truthy, or an empty opt.
func And[V, U truth.I](v V, u U) T[U] {
	if v.Bool() {
		return Some(u)
	}

	return None[U]()
}

// Bool returns the truth value of the opt o.
func (o T[V]) Bool() bool {
	return o.ok && o.v.Bool()
}

// Get returns the held value and true, or the zero value and false.
func (o T[V]) Get() (V, bool) {
	return o.v, o.ok
}

// Name returns the type name for the opt o.
func (o T[V]) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[truth.I]

	// The opt type has a truth value.
	_ = truth.I(t)
}
