// Released under an MIT license. See LICENSE.

// Package res provides the fallible result value type.
package res

import (
	"github.com/truthylang/truthy/pkg/truth"
)

const name = "result"

// T (res) holds either a success value of type V or an error. A res is
// truthy when it is a success and the success value is truthy. An error res
// is always falsy, whatever the error.
type T[V truth.I] struct {
	v   V
	err error
}

// Ok creates a success res holding the value v.
func Ok[V truth.I](v V) T[V] {
	return T[V]{v: v}
}

// Err creates an error res. The error err must not be nil.
func Err[V truth.I](err error) T[V] {
	return T[V]{err: err}
}

// Bool returns the truth value of the res r.
func (r T[V]) Bool() bool {
	return r.err == nil && r.v.Bool()
}

// Get returns the success value, or the error when there is no success
// value.
func (r T[V]) Get() (V, error) {
	return r.v, r.err
}

// Name returns the type name for the res r.
func (r T[V]) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[truth.I]

	// The res type has a truth value.
	_ = truth.I(t)
}
