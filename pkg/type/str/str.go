// Released under an MIT license. See LICENSE.

// Package str provides the string value type.
package str

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/common"
	"github.com/truthylang/truthy/pkg/literal"
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "string"

// T (str) wraps Go's string type. A str is truthy when it is not empty.
type T string

type str = T

// New creates a new str cell.
func New(v string) T {
	return T(v)
}

// Bool returns the truth value of the str s.
func (s str) Bool() bool {
	return len(s) > 0
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s str) Equal(c cell.I) bool {
	return Is(c) && s == To(c)
}

// Literal returns the literal representation of the str s.
func (s str) Literal() string {
	return adapted.CanonicalString(string(s))
}

// Name returns the name of the str type.
func (s str) Name() string {
	return name
}

// String returns the text of the str s.
func (s str) String() string {
	return string(s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(T)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) T {
	if t, ok := c.(T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(t)

	// The str type has a literal representation.
	_ = literal.I(t)

	// The str type is a stringer.
	_ = common.Stringer(t)

	// The str type has a truth value.
	_ = truth.I(t)
}
