// Released under an MIT license. See LICENSE.

package boolean

import (
	"testing"
)

func TestBool(t *testing.T) {
	if !True.Bool() {
		t.Fatal("expected true to be truthy")
	}

	if False.Bool() {
		t.Fatal("expected false to be falsy")
	}
}

func TestEqual(t *testing.T) {
	if !True.Equal(Bool(true)) {
		t.Fatal("expected true to equal true")
	}

	if True.Equal(False) {
		t.Fatal("expected true to not equal false")
	}
}

func TestLiteral(t *testing.T) {
	if s := True.Literal(); s != "true" {
		t.Fatalf("expected true; got %q", s)
	}

	if s := False.Literal(); s != "false" {
		t.Fatalf("expected false; got %q", s)
	}
}

func TestIsTo(t *testing.T) {
	if !Is(True) {
		t.Fatal("expected true to be a boolean")
	}

	if To(False) != False {
		t.Fatal("expected To(false) to be false")
	}
}
