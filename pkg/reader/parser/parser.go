// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent rewriter for boolean
// expressions over identifiers. Each identifier becomes a truthiness test;
// negation, conjunction, disjunction, and grouping are preserved exactly.
//
// There is no precedence table. A bare chain of operators is consumed one
// step at a time: the first term, an operator, and then the rest of the
// expression, so a && b && c is rewritten as
// truthy(a) && (truthy(b) && truthy(c)). Negation consumes the remainder of
// its group. Input that does not fit the grammar is rejected before any
// evaluation, with a diagnostic naming the first unmatched token.
package parser

import (
	"errors"
	"strconv"

	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/expr"
	"github.com/truthylang/truthy/pkg/struct/token"
	"github.com/truthylang/truthy/pkg/type/boolean"
	"github.com/truthylang/truthy/pkg/type/num"
	"github.com/truthylang/truthy/pkg/type/str"
)

// T holds the state of the parser.
type T struct {
	ahead []*token.T         // Token lookahead.
	emit  func(expr.Command) // Function to call to emit a parsed command.
	item  func() *token.T    // Function to call to get another token.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of commands.
func New(emit func(expr.Command), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Copy copies the current parser but replaces its emit and item functions.
func (p *T) Copy(emit func(expr.Command), item func() *token.T) *T {
	c := *p

	c.emit = emit
	c.item = item

	return &c
}

// Parse consumes tokens and emits commands until there are no more tokens.
// A grammar violation stops the parse and is returned as an error.
func (p *T) Parse() (err error) {
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

	for t := p.peek(0); t != nil; t = p.peek(0) {
		if t.Is('\n') {
			p.consume()

			continue
		}

		p.emit(p.command())
	}

	return nil
}

func (p *T) command() expr.Command {
	if p.peek(0).Is(token.Symbol) && p.peek(1).Is('=') {
		return p.binding()
	}

	x := p.expression()

	p.end()

	return x
}

func (p *T) binding() expr.Command {
	k := p.consume().Value()

	p.consume() // The '='.

	v := p.value()

	p.end()

	return expr.NewBind(k, v)
}

// expression applies the rewrite rules: negation wraps the rewritten
// remainder of the group; a parenthesized group or an identifier is
// rewritten and then joined, by rest, with whatever follows it.
func (p *T) expression() expr.T {
	t := p.peek(0)

	switch {
	case t.Is('!'):
		p.consume()

		return expr.Not(p.expression())
	case t.Is('('):
		p.consume()

		x := p.expression()

		if !p.peek(0).Is(')') {
			p.malformed(p.peek(0))
		}

		p.consume()

		return p.rest(expr.Paren(x))
	case t.Is(token.Symbol):
		p.consume()

		return p.rest(expr.Ident(t.Value()))
	}

	p.malformed(t)

	return nil
}

// rest joins the rewritten term l with the rewritten remainder when a
// binary operator follows, and otherwise ends the (sub)expression.
func (p *T) rest(l expr.T) expr.T {
	t := p.peek(0)

	switch {
	case t.Is(token.Andf):
		p.consume()

		return expr.And(l, p.expression())
	case t.Is(token.Orf):
		p.consume()

		return expr.Or(l, p.expression())
	case t == nil, t.Is('\n'), t.Is(')'):
		return l
	}

	p.malformed(t)

	return nil
}

// value converts a literal token to a cell.
func (p *T) value() cell.I {
	t := p.peek(0)

	switch {
	case t.Is(token.DoubleQuoted):
		p.consume()

		s, err := strconv.Unquote(t.Value())
		if err != nil {
			panic(t.Value() + " is not a valid string at " + t.Source().String())
		}

		return str.New(s)
	case t.Is(token.Symbol):
		p.consume()

		v := t.Value()

		switch v {
		case "true":
			return boolean.True
		case "false":
			return boolean.False
		}

		if i, err := strconv.ParseInt(v, 0, 64); err == nil {
			return num.Int(i)
		}

		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return num.Float(f)
		}

		panic(strconv.Quote(v) + " is not a valid literal at " + t.Source().String())
	}

	p.malformed(t)

	return nil
}

// end requires the current command to be followed by a newline or the end
// of input.
func (p *T) end() {
	t := p.peek(0)
	if t == nil {
		return
	}

	if t.Is('\n') {
		p.consume()

		return
	}

	p.malformed(t)
}

func (p *T) consume() *token.T {
	if len(p.ahead) == 0 {
		panic("nothing to consume.")
	}

	t := p.ahead[0]
	p.ahead = p.ahead[1:]

	return t
}

func (p *T) peek(n int) *token.T {
	for len(p.ahead) <= n {
		t := p.item()
		if t == nil {
			return nil
		}

		p.ahead = append(p.ahead, t)
	}

	return p.ahead[n]
}

func (p *T) malformed(t *token.T) {
	if t == nil {
		panic("malformed boolean expression: unexpected end of input")
	}

	panic("malformed boolean expression: unexpected " +
		strconv.Quote(t.Value()) + " at " + t.Source().String())
}
