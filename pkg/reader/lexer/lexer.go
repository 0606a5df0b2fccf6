// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for boolean expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/truthylang/truthy/pkg/struct/loc"
	"github.com/truthylang/truthy/pkg/struct/token"
)

// T holds the state of the scanner.
type T struct {
	expected []string // Completion candidates.

	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Copy makes a copy of the lexer with its own token channel.
// A copy is useful for doing partial parses for command completion.
func (l *T) Copy() *T {
	c := *l

	// The copy gets its own queue so that scanning it cannot
	// disturb buffers queued on the original.
	c.queue = append([]string(nil), l.queue...)

	c.tokens = make(chan *token.T, 16)

	return &c
}

// Expected returns the list of expected strings. (Command completion).
func (l *T) Expected() []string {
	return l.expected
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	t := token.New(c, v, &source)

	l.tokens <- t
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterAmpersand(l *T) action {
	r, w := l.peek()

	l.expected = []string{"& "}

	switch r {
	case eof:
		return nil
	case '&':
		l.accept(r, w)
		l.emit(token.Andf, l.Text())
		return skipWhitespace
	}

	// A lone ampersand has no meaning here.
	l.emit(token.Error, l.Text())
	return skipWhitespace
}

func afterPipe(l *T) action {
	r, w := l.peek()

	l.expected = []string{"| "}

	switch r {
	case eof:
		return nil
	case '|':
		l.accept(r, w)
		l.emit(token.Orf, l.Text())
		return skipWhitespace
	}

	// A lone pipe has no meaning here.
	l.emit(token.Error, l.Text())
	return skipWhitespace
}

func scanDoubleQuoted(l *T) action {
	for {
		c := l.next()

		switch c {
		case eof:
			return nil
		case '"':
			l.emit(token.DoubleQuoted, l.Text())
			return skipWhitespace
		case '\\':
			if l.next() == eof {
				return nil
			}
		}
	}
}

func scanSymbol(l *T) action {
	// A symbol is an identifier or a bare literal: letters, digits,
	// '_', '.', '-', '+'. Everything else ends the symbol.
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', '!', '"', '#',
			'&', '(', ')', '=', '|':
			l.emit(token.Symbol, l.Text())
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.emit('\n', l.Text())
			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	l.expected = []string{}

	for {
		r := l.next()

		if strings.ContainsRune("\t\r ", rune(r)) {
			l.skip()
			continue
		}

		switch r {
		case eof:
			return nil
		case '\n', '!', '(', ')', '=':
			l.emit(r, l.Text())
			return skipWhitespace
		case '"':
			return scanDoubleQuoted
		case '#':
			return skipComment
		case '&':
			return afterAmpersand
		case '|':
			return afterPipe
		default:
			return scanSymbol
		}
	}
}
