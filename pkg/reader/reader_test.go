// Released under an MIT license. See LICENSE.

package reader

import (
	"strings"
	"testing"

	"github.com/truthylang/truthy/pkg/cell"
	"github.com/truthylang/truthy/pkg/expr"
	"github.com/truthylang/truthy/pkg/type/boolean"
)

type scope map[string]cell.I

func (s scope) Lookup(k string) (cell.I, bool) {
	v, ok := s[k]

	return v, ok
}

func TestParse(t *testing.T) {
	x, err := Parse("test", "x && (y || !z)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := x.String(); s != "truthy(x) && (truthy(y) || !truthy(z))" {
		t.Fatalf("unexpected rewrite: %q", s)
	}
}

func TestParseBinding(t *testing.T) {
	_, err := Parse("test", "x = 1")
	if err == nil || !strings.Contains(err.Error(), "not a boolean expression") {
		t.Fatalf("expected a binding to be rejected; got %v", err)
	}
}

func TestRewrite(t *testing.T) {
	s, err := Rewrite("test", "a || b && c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s != "truthy(a) || (truthy(b) && truthy(c))" {
		t.Fatalf("unexpected rewrite: %q", s)
	}
}

func TestRewriteMalformed(t *testing.T) {
	_, err := Rewrite("test", "a &&")
	if err == nil || !strings.Contains(err.Error(), "malformed boolean expression") {
		t.Fatalf("expected a diagnostic; got %v", err)
	}
}

func TestScanContinuation(t *testing.T) {
	r := New("test")
	defer r.Close()

	// The first line ends mid-operator, so there is no command yet.
	c, err := r.Scan("x &")
	if c != nil || err != nil {
		t.Fatalf("expected no command yet; got %v, %v", c, err)
	}

	c, err = r.Scan("& y\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, ok := c.(expr.T)
	if !ok {
		t.Fatalf("expected an expression; got %v", c)
	}

	if s := x.String(); s != "truthy(x) && truthy(y)" {
		t.Fatalf("unexpected rewrite: %q", s)
	}
}

func TestCompletion(t *testing.T) {
	r := New("test")
	defer r.Close()

	// A partial parse of a line that ends mid-operator, the way the
	// interactive completer probes for what must come next.
	lc := r.Lexer().Copy()

	lc.Scan("x &")

	lp := r.Parser().Copy(func(c expr.Command) {}, lc.Token)

	lp.Parse()

	cs := lc.Expected()
	if len(cs) != 1 || cs[0] != "& " {
		t.Fatalf("expected completion \"& \"; got %v", cs)
	}

	// The live reader is unaffected by the partial parse.
	c, err := r.Scan("x && y\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, ok := c.(expr.T)
	if !ok {
		t.Fatalf("expected an expression; got %v", c)
	}

	if s := x.String(); s != "truthy(x) && truthy(y)" {
		t.Fatalf("unexpected rewrite: %q", s)
	}
}

func TestEvaluation(t *testing.T) {
	// The rewritten tree and the native expression must agree for
	// every assignment.
	for i := 0; i < 8; i++ {
		a, b, c := i&4 != 0, i&2 != 0, i&1 != 0

		s := scope{
			"a": boolean.Bool(a),
			"b": boolean.Bool(b),
			"c": boolean.Bool(c),
		}

		x, err := Parse("test", "a && (b || !c)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if x.Bool(s) != (a && (b || !c)) {
			t.Fatalf("wrong value for a=%v b=%v c=%v", a, b, c)
		}

		x, err = Parse("test", "!a || b && c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if x.Bool(s) != (!(a || b && c)) {
			t.Fatalf("wrong value for a=%v b=%v c=%v", a, b, c)
		}
	}
}
