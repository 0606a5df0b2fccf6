// Released under an MIT license. See LICENSE.

// Package boolean provides the boolean value type.
package boolean

import (
	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/common"
	"github.com/truthylang/truthy/pkg/literal"
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type. A boolean is truthy when it is true.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = T(false)
	True  = T(true)
)

// Bool creates a new boolean from the bool b.
func Bool(b bool) T {
	return T(b)
}

// Bool returns the boolean value of the boolean b.
func (b boolean) Bool() bool {
	return bool(b)
}

// Equal returns true if c is a boolean with a matching value.
func (b boolean) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Literal returns the literal representation of the boolean b.
func (b boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b boolean) String() string {
	if b {
		return "true"
	}

	return "false"
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(T)

	return ok
}

// To returns a boolean if c is a boolean; Otherwise it panics.
func To(c cell.I) T {
	if t, ok := c.(T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(t)

	// The boolean type has a literal representation.
	_ = literal.I(t)

	// The boolean type is a stringer.
	_ = common.Stringer(t)

	// The boolean type has a truth value.
	_ = truth.I(t)
}
