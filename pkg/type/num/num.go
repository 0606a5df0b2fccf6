// Released under an MIT license. See LICENSE.

// Package num provides the numeric value type for every integer width and
// both float widths.
package num

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/common"
	"github.com/truthylang/truthy/pkg/literal"
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "number"

// Value is any Go numeric type a num can wrap.
type Value interface {
	constraints.Integer | constraints.Float
}

// T (num) wraps a Go numeric type. A num is truthy when it is not equal to
// the zero of its type. Under IEEE comparison NaN is truthy and both
// positive and negative zero are falsy.
type T[V Value] struct {
	v V
}

// New creates a new num from the value v.
func New[V Value](v V) T[V] {
	return T[V]{v: v}
}

// Int creates a num from the integer i.
func Int(i int64) T[int64] {
	return New(i)
}

// Float creates a num from the float f.
func Float(f float64) T[float64] {
	return New(f)
}

// Bool returns the truth value of the num n.
func (n T[V]) Bool() bool {
	var zero V

	return n.v != zero
}

// Equal returns true if c is a num with a matching value and width.
func (n T[V]) Equal(c cell.I) bool {
	return Is[V](c) && n == To[V](c)
}

// Literal returns the literal representation of the num n.
func (n T[V]) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n T[V]) Name() string {
	return name
}

// String returns the text of the num n.
func (n T[V]) String() string {
	return fmt.Sprintf("%v", n.v)
}

// Value returns the wrapped value of the num n.
func (n T[V]) Value() V {
	return n.v
}

// Is returns true if c is a num wrapping V.
func Is[V Value](c cell.I) bool {
	_, ok := c.(T[V])

	return ok
}

// To returns a num wrapping V if c is one; Otherwise it panics.
func To[V Value](c cell.I) T[V] {
	if t, ok := c.(T[V]); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[int]

	// The num type is a cell.
	_ = cell.I(t)

	// The num type has a literal representation.
	_ = literal.I(t)

	// The num type is a stringer.
	_ = common.Stringer(t)

	// The num type has a truth value.
	_ = truth.I(t)
}
