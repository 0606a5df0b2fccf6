// Released under an MIT license. See LICENSE.

// Package ui provides the interactive command-line interface.
package ui

import (
	"strings"

	"github.com/peterh/liner"

	"github.com/truthylang/truthy/pkg/expr"
	"github.com/truthylang/truthy/pkg/reader"
)

// Evaluator is the interface for things that want to process parsed
// commands.
type Evaluator interface {
	Evaluate(c expr.Command)
	Idents() []string
}

// Run launches the UI which sends commands to the Evaluator.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	r := reader.New("truthy")
	defer func() {
		r.Close()
	}()

	complete := func(s string, n int) (h string, cs []string, t string) {
		h = s[:n]
		t = s[n:]

		// A partial parse of the line so far. Mid-operator, the
		// lexer knows what must come next.
		lc := r.Lexer().Copy()

		lc.Scan(h)

		lp := r.Parser().Copy(func(c expr.Command) {}, lc.Token)

		lp.Parse()

		if cs = lc.Expected(); len(cs) > 0 {
			return
		}

		i := strings.LastIndexAny(h, " \t!&|()=") + 1
		prefix := h[i:]
		h = h[:i]

		for _, k := range e.Idents() {
			if strings.HasPrefix(k, prefix) {
				cs = append(cs, k)
			}
		}

		return
	}

	cli.SetWordCompleter(complete)

	for {
		line, err := cli.Prompt("? ")

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			// Abandon any partial parse.
			r.Close()
			r = reader.New("truthy")

			continue
		default:
			return
		}

		c, err := r.Scan(line + "\n")
		if err != nil {
			println("truthy: " + err.Error())

			// The parse stopped. Start fresh.
			r.Close()
			r = reader.New("truthy")

			continue
		}

		if c != nil {
			e.Evaluate(c)
		}
	}
}
