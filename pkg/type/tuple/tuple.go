// Released under an MIT license. See LICENSE.

// Package tuple provides the fixed-arity tuple value types. A tuple with
// fields is always truthy. Unit, the tuple with no fields, is always falsy.
package tuple

import (
	"github.com/truthylang/truthy/pkg/truth"
)

// Unit is the no-value type.
type Unit struct{}

// Bool returns the truth value of the unit u. It is always false.
func (u Unit) Bool() bool {
	return false
}

// T1 is the 1-tuple.
type T1[A any] struct {
	A A
}

// T2 is the 2-tuple.
type T2[A, B any] struct {
	A A
	B B
}

// T3 is the 3-tuple.
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

// T4 is the 4-tuple.
type T4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// T5 is the 5-tuple.
type T5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// T6 is the 6-tuple.
type T6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// T7 is the 7-tuple.
type T7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// T8 is the 8-tuple.
type T8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// T9 is the 9-tuple.
type T9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// T10 is the 10-tuple.
type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

// T11 is the 11-tuple.
type T11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

// T12 is the 12-tuple.
type T12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// A tuple with fields has a value, so it is truthy no matter what its
// fields hold.

func (t T1[A]) Bool() bool { return true }

func (t T2[A, B]) Bool() bool { return true }

func (t T3[A, B, C]) Bool() bool { return true }

func (t T4[A, B, C, D]) Bool() bool { return true }

func (t T5[A, B, C, D, E]) Bool() bool { return true }

func (t T6[A, B, C, D, E, F]) Bool() bool { return true }

func (t T7[A, B, C, D, E, F, G]) Bool() bool { return true }

func (t T8[A, B, C, D, E, F, G, H]) Bool() bool { return true }

func (t T9[A, B, C, D, E, F, G, H, I]) Bool() bool { return true }

func (t T10[A, B, C, D, E, F, G, H, I, J]) Bool() bool { return true }

func (t T11[A, B, C, D, E, F, G, H, I, J, K]) Bool() bool { return true }

func (t T12[A, B, C, D, E, F, G, H, I, J, K, L]) Bool() bool { return true }

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	// Every tuple type has a truth value.
	_ = truth.I(Unit{})
	_ = truth.I(T1[int]{})
	_ = truth.I(T2[int, int]{})
	_ = truth.I(T12[int, int, int, int, int, int, int, int, int, int, int, int]{})
}
