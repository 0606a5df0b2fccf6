// Released under an MIT license. See LICENSE.

// Package expr provides the boolean expression tree produced by the
// rewriter. Every leaf is a truthiness test; the interior nodes mirror the
// negation, conjunction, disjunction, and grouping of the source
// expression. Evaluation uses Go's native boolean operators and so
// short-circuits exactly as they do.
//
// The constructors double as a programmatic surface: callers that do not
// want the textual grammar can compose Lit, Not, And, and Or directly.
package expr

import (
	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/literal"
	"github.com/truthylang/truthy/pkg/truth"
)

// Scope resolves identifiers to cells.
type Scope interface {
	Lookup(k string) (cell.I, bool)
}

// T (expr) is a rewritten boolean expression. String returns the rewritten
// form, with every identifier x replaced by truthy(x) and grouping
// preserved. Bool evaluates the expression against a scope.
type T interface {
	Bool(s Scope) bool
	String() string
}

// Command is anything the parser emits: an expression or a binding.
type Command interface {
	String() string
}

// Bind records the binding of a name to a cell.
type Bind struct {
	K string
	V cell.I
}

// NewBind creates a new binding of the cell v to the name k.
func NewBind(k string, v cell.I) *Bind {
	return &Bind{K: k, V: v}
}

// String returns the text of the binding b.
func (b *Bind) String() string {
	return b.K + " = " + literal.String(b.V)
}

// Ident creates a leaf that evaluates the truthiness of the cell bound to
// name. Evaluating an unbound identifier panics; the rewriter's callers
// recover that into a diagnostic.
func Ident(name string) T {
	return &ident{name: name}
}

// Lit creates a leaf that evaluates the truthiness of the cell c itself.
func Lit(c cell.I) T {
	return &lit{c: c}
}

// Not creates the negation of the expression x.
func Not(x T) T {
	return &not{x: x}
}

// And creates the short-circuit conjunction of l and r. r is not evaluated
// when l is falsy.
func And(l, r T) T {
	return &and{l: l, r: r}
}

// Or creates the short-circuit disjunction of l and r. r is not evaluated
// when l is truthy.
func Or(l, r T) T {
	return &or{l: l, r: r}
}

// Paren creates an explicitly grouped copy of the expression x.
func Paren(x T) T {
	return &paren{x: x}
}

type ident struct {
	name string
}

func (x *ident) Bool(s Scope) bool {
	c, ok := s.Lookup(x.name)
	if !ok {
		panic("undefined: " + x.name)
	}

	return truth.Value(c)
}

func (x *ident) String() string {
	return "truthy(" + x.name + ")"
}

type lit struct {
	c cell.I
}

func (x *lit) Bool(s Scope) bool {
	return truth.Value(x.c)
}

func (x *lit) String() string {
	return "truthy(" + literal.String(x.c) + ")"
}

type not struct {
	x T
}

func (x *not) Bool(s Scope) bool {
	return !x.x.Bool(s)
}

func (x *not) String() string {
	return "!" + group(x.x)
}

type and struct {
	l, r T
}

func (x *and) Bool(s Scope) bool {
	return x.l.Bool(s) && x.r.Bool(s)
}

func (x *and) String() string {
	return x.l.String() + " && " + group(x.r)
}

type or struct {
	l, r T
}

func (x *or) Bool(s Scope) bool {
	return x.l.Bool(s) || x.r.Bool(s)
}

func (x *or) String() string {
	return x.l.String() + " || " + group(x.r)
}

type paren struct {
	x T
}

func (x *paren) Bool(s Scope) bool {
	return x.x.Bool(s)
}

func (x *paren) String() string {
	return "(" + x.x.String() + ")"
}

// group parenthesizes composite operands so that re-reading the rewritten
// text under Go's native precedence preserves the original grouping.
func group(x T) string {
	switch x.(type) {
	case *and, *or:
		return "(" + x.String() + ")"
	}

	return x.String()
}
