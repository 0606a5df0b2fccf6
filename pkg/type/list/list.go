// Released under an MIT license. See LICENSE.

// Package list provides the homogeneous sequence value type.
package list

import (
	"fmt"

	"github.com/truthylang/truthy/pkg/common"
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "list"

// T (list) wraps a Go slice. A list is truthy when its length is greater
// than zero.
type T[E any] []E

// New creates a new list from the elements e.
func New[E any](e ...E) T[E] {
	return T[E](e)
}

// Bool returns the truth value of the list l.
func (l T[E]) Bool() bool {
	return len(l) > 0
}

// Len returns the number of elements in the list l.
func (l T[E]) Len() int {
	return len(l)
}

// Name returns the type name for the list l.
func (l T[E]) Name() string {
	return name
}

// String returns the text of the list l.
func (l T[E]) String() string {
	return fmt.Sprintf("%v", []E(l))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[int]

	// The list type is a stringer.
	_ = common.Stringer(t)

	// The list type has a truth value.
	_ = truth.I(t)
}
