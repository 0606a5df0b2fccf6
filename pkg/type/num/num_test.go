// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"testing"
)

func TestBoolInteger(t *testing.T) {
	if Int(0).Bool() {
		t.Fatal("expected 0 to be falsy")
	}

	if !Int(-1).Bool() {
		t.Fatal("expected -1 to be truthy")
	}

	if New(int32(0)).Bool() {
		t.Fatal("expected int32(0) to be falsy")
	}

	if !New(uint8(255)).Bool() {
		t.Fatal("expected uint8(255) to be truthy")
	}
}

func TestBoolFloat(t *testing.T) {
	if Float(0.0).Bool() {
		t.Fatal("expected 0.0 to be falsy")
	}

	// Negative zero compares equal to zero.
	if Float(math.Copysign(0, -1)).Bool() {
		t.Fatal("expected -0.0 to be falsy")
	}

	// NaN compares unequal to everything, including zero.
	if !Float(math.NaN()).Bool() {
		t.Fatal("expected NaN to be truthy")
	}

	if !New(float32(0.5)).Bool() {
		t.Fatal("expected float32(0.5) to be truthy")
	}
}

func TestEqual(t *testing.T) {
	if !Int(42).Equal(Int(42)) {
		t.Fatal("expected 42 to equal 42")
	}

	if Int(42).Equal(Int(43)) {
		t.Fatal("expected 42 to not equal 43")
	}

	// Same value, different width.
	if New(int32(1)).Equal(Int(1)) {
		t.Fatal("expected int32(1) to not equal int64(1)")
	}
}

func TestLiteral(t *testing.T) {
	if s := Int(42).Literal(); s != "42" {
		t.Fatalf("expected 42; got %q", s)
	}

	if s := Float(1.5).Literal(); s != "1.5" {
		t.Fatalf("expected 1.5; got %q", s)
	}
}

func TestIsTo(t *testing.T) {
	n := Int(7)

	if !Is[int64](n) {
		t.Fatal("expected 7 to be an int64 num")
	}

	if Is[int32](n) {
		t.Fatal("expected 7 to not be an int32 num")
	}

	if To[int64](n).Value() != 7 {
		t.Fatal("expected To to return 7")
	}
}
