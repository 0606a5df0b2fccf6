/*
Truthy is a calculator for truthiness. It binds names to values and
evaluates boolean expressions over those names, where each name counts as
true when its value is non-zero, non-empty, or present:

    $ truthy -b x=1 -b y='""' -b z=false -c 'x && (y || !z)'
    true

    $ truthy -r 'x && (y || !z)'
    truthy(x) && (truthy(y) || !truthy(z))

Run with no arguments on a terminal for an interactive session.

For more detail, see: https://github.com/truthylang/truthy

Truthy is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/truthylang/truthy/internal/engine"
	"github.com/truthylang/truthy/internal/system/options"
	"github.com/truthylang/truthy/internal/ui"
	"github.com/truthylang/truthy/pkg/expr"
	"github.com/truthylang/truthy/pkg/reader"
)

const version = "0.3.0"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("truthy " + version)

		return
	}

	e := engine.New()

	for _, b := range options.Bindings() {
		define(e, b)
	}

	switch {
	case options.Rewrite() != "":
		s, err := reader.Rewrite("truthy", options.Rewrite())
		if err != nil {
			die(err.Error())
		}

		fmt.Println(s)
	case options.Command() != "":
		x, err := reader.Parse("truthy", options.Command())
		if err != nil {
			die(err.Error())
		}

		v, err := e.Eval(x)
		if err != nil {
			die(err.Error())
		}

		fmt.Println(v)

		if !v {
			os.Exit(1)
		}
	case options.Stdin():
		scan(e)
	case options.Interactive():
		ui.Run(e)
	default:
		// Stdin is not a terminal.
		scan(e)
	}
}

// define evaluates the NAME=LITERAL pair b and records the binding.
func define(e *engine.T, b string) {
	r := reader.New("binding")
	defer r.Close()

	c, err := r.Scan(b + "\n")
	if err != nil {
		die(err.Error())
	}

	bind, ok := c.(*expr.Bind)
	if !ok {
		die(b + " is not a NAME=LITERAL pair")
	}

	e.Define(bind.K, bind.V)
}

// scan evaluates commands from stdin, line by line.
func scan(e *engine.T) {
	r := reader.New("stdin")
	defer func() {
		r.Close()
	}()

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		c, err := r.Scan(in.Text() + "\n")
		if err != nil {
			println("truthy: " + err.Error())

			// The parse stopped. Start fresh.
			r.Close()
			r = reader.New("stdin")

			continue
		}

		if c != nil {
			e.Evaluate(c)
		}
	}
}

func die(msg string) {
	println("truthy: " + msg)
	os.Exit(2)
}
