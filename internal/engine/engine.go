// Released under an MIT license. See LICENSE.

// Package engine evaluates parsed commands against a scope of bindings.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/expr"
)

// T (engine) holds the bindings commands are evaluated against.
type T struct {
	scope map[string]cell.I
}

// New creates a new T.
func New() *T {
	return &T{scope: map[string]cell.I{}}
}

// Define binds the cell v to the name k.
func (e *T) Define(k string, v cell.I) {
	e.scope[k] = v
}

// Lookup resolves the name k. It makes the engine an expr.Scope.
func (e *T) Lookup(k string) (cell.I, bool) {
	v, ok := e.scope[k]

	return v, ok
}

// Idents returns the bound names in sorted order. (Command completion).
func (e *T) Idents() []string {
	ks := make([]string, 0, len(e.scope))
	for k := range e.scope {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// Eval evaluates the expression x against the engine's bindings. An
// undefined identifier or a binding that cannot be coerced is returned as
// an error.
func (e *T) Eval(x expr.T) (v bool, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			err = errors.New("unexpected error")
		}
	}()

	return x.Bool(e), nil
}

// Evaluate processes the command c, printing the result of an expression
// or recording a binding. Diagnostics go to standard error.
func (e *T) Evaluate(c expr.Command) {
	switch c := c.(type) {
	case *expr.Bind:
		e.Define(c.K, c.V)
	case expr.T:
		v, err := e.Eval(c)
		if err != nil {
			println("truthy: " + err.Error())

			return
		}

		fmt.Println(v)
	}
}
