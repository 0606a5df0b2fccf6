// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/truthylang/truthy/pkg/struct/token"
)

func TestExpression(t *testing.T) {
	h := setup(t, "Expression")

	h.scan("x && (y || !z)\n",
		h.symbol("x"),
		h.other(token.Andf, "&&"),
		h.literal("("),
		h.symbol("y"),
		h.other(token.Orf, "||"),
		h.literal("!"),
		h.symbol("z"),
		h.literal(")"),
		h.literal("\n"),
		nil,
	)
}

func TestBinding(t *testing.T) {
	h := setup(t, "Binding")

	h.scan("x = 42\n",
		h.symbol("x"),
		h.literal("="),
		h.symbol("42"),
		h.literal("\n"),
		nil,
	)
}

func TestDoubleQuoted(t *testing.T) {
	h := setup(t, "DoubleQuoted")

	h.scan("s = \"a\\\"b\"\n",
		h.symbol("s"),
		h.literal("="),
		h.other(token.DoubleQuoted, "\"a\\\"b\""),
		h.literal("\n"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	// The comment is carried as the text of the newline that ends it.
	h.scan("x # ignored\n",
		h.symbol("x"),
		h.other('\n', "# ignored\n"),
		nil,
	)
}

func TestLoneAmpersand(t *testing.T) {
	h := setup(t, "LoneAmpersand")

	h.scan("a & b\n",
		h.symbol("a"),
		h.other(token.Error, "&"),
		h.symbol("b"),
		h.literal("\n"),
		nil,
	)
}

func TestLonePipe(t *testing.T) {
	h := setup(t, "LonePipe")

	h.scan("a | b\n",
		h.symbol("a"),
		h.other(token.Error, "|"),
		h.symbol("b"),
		h.literal("\n"),
		nil,
	)
}

func TestTokenSpanningBuffers(t *testing.T) {
	h := setup(t, "TokenSpanningBuffers")

	// An operator split across two buffers is a single token.
	h.scan("x &",
		h.symbol("x"),
		nil,
	)

	h.scan("& y\n",
		h.other(token.Andf, "&&"),
		h.symbol("y"),
		h.literal("\n"),
		nil,
	)
}

func TestCopy(t *testing.T) {
	h := setup(t, "Copy")

	h.lexer.Scan("x")
	h.lexer.Scan(" &")
	h.lexer.Scan("& ")

	hc := &harness{lexer: h.lexer.Copy(), t: t}

	// Each lexer sees only its own tail.
	hc.lexer.Scan("y\n")
	h.lexer.Scan("z\n")

	hc.expect(
		hc.symbol("x"),
		hc.other(token.Andf, "&&"),
		hc.symbol("y"),
		hc.literal("\n"),
		nil,
	)

	h.expect(
		h.symbol("x"),
		h.other(token.Andf, "&&"),
		h.symbol("z"),
		h.literal("\n"),
		nil,
	)
}

func TestSymbolDelimiters(t *testing.T) {
	h := setup(t, "SymbolDelimiters")

	h.scan("a.b-c+1_2!d\n",
		h.symbol("a.b-c+1_2"),
		h.literal("!"),
		h.symbol("d"),
		h.literal("\n"),
		nil,
	)
}

type item struct {
	class token.Class
	value string
}

type harness struct {
	lexer *T
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{lexer: New(label), t: t}
}

func (h *harness) expect(items ...*item) {
	for _, e := range items {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("expected %q but there are no tokens", e.value)
		case e == nil:
			h.t.Fatalf("expected no tokens; got %v", a)
		case !a.Is(e.class) || a.Value() != e.value:
			h.t.Fatalf("expected %q (%v); got %v", e.value, e.class.String(), a)
		}
	}
}

func (h *harness) literal(s string) *item {
	return &item{class: token.Class(s[0]), value: s}
}

func (h *harness) other(c token.Class, s string) *item {
	return &item{class: c, value: s}
}

func (h *harness) scan(s string, items ...*item) {
	h.lexer.Scan(s)
	h.expect(items...)
}

func (h *harness) symbol(s string) *item {
	return &item{class: token.Symbol, value: s}
}
