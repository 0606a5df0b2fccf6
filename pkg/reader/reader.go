// Released under an MIT license. See LICENSE.

// Package reader couples the lexer and parser. It turns the parser's pull
// interface into the line-at-a-time interface the REPL wants, and provides
// one-shot helpers for parsing and rewriting complete expressions.
package reader

import (
	"errors"

	"github.com/truthylang/truthy/pkg/expr"
	"github.com/truthylang/truthy/pkg/reader/lexer"
	"github.com/truthylang/truthy/pkg/reader/parser"
	"github.com/truthylang/truthy/pkg/struct/token"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	e chan error
	i chan string
	o chan expr.Command
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		e: make(chan error, 1),
		i: make(chan string),
		o: make(chan expr.Command),
		s: lexer.New(name),
	}

	var v expr.Command

	r.p = parser.New(func(c expr.Command) {
		v = c
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- v

			v = nil

			if !r.next() {
				close(r.o)

				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Close terminates the reader.
func (r *reader) Close() {
	close(r.i)
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Parser returns the reader's internal parser.T.
func (r *reader) Parser() *parser.T {
	return r.p
}

// Scan reads the line and returns a command on a complete parse or nil
// otherwise. If scan encounters any error it returns the error.
func (r *reader) Scan(line string) (c expr.Command, err error) {
	r.i <- line

	select {
	case c = <-r.o:
	case err = <-r.e:
	}

	return c, err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	r.next()

	r.e <- r.p.Parse()
	close(r.e)
}

// Parse parses a single complete boolean expression and returns the
// rewritten expression tree.
func Parse(name, text string) (x expr.T, err error) {
	var c expr.Command

	r := New(name)

	c, err = r.Scan(text + "\n")

	r.Close()

	if err != nil {
		return nil, err
	}

	x, ok := c.(expr.T)
	if !ok {
		return nil, errors.New("not a boolean expression")
	}

	return x, nil
}

// Rewrite parses a single complete boolean expression and returns its
// rewritten textual form, with every identifier x replaced by truthy(x).
func Rewrite(name, text string) (string, error) {
	x, err := Parse(name, text)
	if err != nil {
		return "", err
	}

	return x.String(), nil
}
