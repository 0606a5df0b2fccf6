// Released under an MIT license. See LICENSE.

// Package truth defines the interface for types that have a truth value,
// along with operations derived from that interface. A value is truthy when
// it is non-zero, non-empty, or present; each type package documents its
// own rule.
package truth

import (
	"github.com/truthylang/truthy/pkg/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell, if possible.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		panic(c.Name() + " cannot be used in a boolean context")
	}

	return b.Bool()
}

// Not returns true if v is falsy. It is always the exact complement of
// v.Bool(); the combinators rely on that.
func Not(v I) bool {
	return !v.Bool()
}
