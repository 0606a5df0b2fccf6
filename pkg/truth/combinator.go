// Released under an MIT license. See LICENSE.

package truth

// The combinators below are written only in terms of Bool. None of them can
// fail, and the function arguments to the lazy forms are called at most
// once, only on the branch that needs their result.

// Or returns v if v is truthy, or returns d.
func Or[T I](v, d T) T {
	if v.Bool() {
		return v
	}

	return d
}

// OrEq does nothing if *v is truthy, or sets *v to d.
func OrEq[T I](v *T, d T) {
	if Not(*v) {
		*v = d
	}
}

// OrElse returns v if v is truthy, or calls f and returns the result.
func OrElse[T I](v T, f func() T) T {
	if v.Bool() {
		return v
	}

	return f()
}

// OrElseEq does nothing if *v is truthy, or calls f and sets *v to the result.
func OrElseEq[T I](v *T, f func() T) {
	if Not(*v) {
		*v = f()
	}
}

// And returns v if v is falsy, or returns r.
func And[T I](v, r T) T {
	if Not(v) {
		return v
	}

	return r
}

// AndEq sets *v to r if *v is truthy, otherwise does nothing.
func AndEq[T I](v *T, r T) {
	if (*v).Bool() {
		*v = r
	}
}

// AndThen returns v if v is falsy, or calls f with v and returns the result.
func AndThen[T I](v T, f func(T) T) T {
	if Not(v) {
		return v
	}

	return f(v)
}

// AndThenEq calls f with *v and sets *v to the result if *v is truthy,
// otherwise does nothing.
func AndThenEq[T I](v *T, f func(T) T) {
	if (*v).Bool() {
		*v = f(*v)
	}
}
