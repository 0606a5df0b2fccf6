// Released under an MIT license. See LICENSE.

// Package either provides the two-variant sum value type.
package either

import (
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "either"

// T (either) holds exactly one of two alternative values, tagged by which
// alternative is active. An either takes the truth value of its active
// value.
type T[L, R truth.I] struct {
	l     L
	r     R
	right bool
}

// Left creates an either with the left alternative active.
func Left[L, R truth.I](l L) T[L, R] {
	return T[L, R]{l: l}
}

// Right creates an either with the right alternative active.
func Right[L, R truth.I](r R) T[L, R] {
	return T[L, R]{r: r, right: true}
}

// Or is the truthy-or operation: it returns an either holding l on the left
// if l is truthy, or an either holding r on the right.
func Or[L, R truth.I](l L, r R) T[L, R] {
	if l.Bool() {
		return Left[L, R](l)
	}

	return Right[L](r)
}

// Bool returns the truth value of the either e.
func (e T[L, R]) Bool() bool {
	if e.right {
		return e.r.Bool()
	}

	return e.l.Bool()
}

// Left returns the left value and true, or the zero value and false.
func (e T[L, R]) Left() (L, bool) {
	return e.l, !e.right
}

// Right returns the right value and true, or the zero value and false.
func (e T[L, R]) Right() (R, bool) {
	return e.r, e.right
}

// Name returns the type name for the either e.
func (e T[L, R]) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[truth.I, truth.I]

	// The either type has a truth value.
	_ = truth.I(t)
}
