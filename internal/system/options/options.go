// Released under an MIT license. See LICENSE.

package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	bindings    []string
	command     string
	interactive bool
	rewrite     string
	stdin       bool
	version     bool
	usage       = `truthy

Usage:
  truthy [-b BINDING]... -c EXPR
  truthy [-b BINDING]... -r EXPR
  truthy [-b BINDING]... [-s]
  truthy -h
  truthy -v

Arguments:
  BINDING  A NAME=LITERAL pair. Literals are integers, floats,
           double-quoted strings, true, and false.
  EXPR     A boolean expression over bound identifiers using
           &&, ||, ! and parentheses.

Options:
  -b, --bind=BINDING   Bind an identifier before evaluating.
  -c, --command=EXPR   Evaluate the expression and print true or false.
  -r, --rewrite=EXPR   Print the rewritten form of the expression.
  -s, --stdin          Read commands from stdin.
  -h, --help           Display this help.
  -v, --version        Print truthy version.

If truthy's stdin is a TTY and no expression was given, interactive mode
is enabled: bindings and expressions are read line by line, with history
and identifier completion. With -c, the exit status is 0 when the
expression is truthy and 1 when it is falsy.
`
)

func Bindings() []string {
	return bindings
}

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	bindings, _ = opts["--bind"].([]string)
	command, _ = opts.String("--command")
	rewrite, _ = opts.String("--rewrite")
	stdin, _ = opts.Bool("--stdin")
	version, _ = opts.Bool("--version")

	if command == "" && rewrite == "" && !stdin && !version &&
		isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

func Rewrite() string {
	return rewrite
}

func Stdin() bool {
	return stdin
}

func Version() bool {
	return version
}
