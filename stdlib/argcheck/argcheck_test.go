package argcheck

import (
	"testing"

	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

var pos = token.Position{Line: 1, Column: 1}

func TestExactly(t *testing.T) {
	args := []*value.Value{value.Num(1, pos)}
	if err := Exactly("f", args, 1, pos); err != nil {
		t.Errorf("Exactly(1, 1) returned error: %v", err)
	}
	if err := Exactly("f", args, 2, pos); err == nil {
		t.Error("Exactly(1, 2) should have returned an error")
	}
}

func TestAtLeast(t *testing.T) {
	args := []*value.Value{value.Num(1, pos), value.Num(2, pos)}
	if err := AtLeast("f", args, 1, pos); err != nil {
		t.Errorf("AtLeast(2, 1) returned error: %v", err)
	}
	if err := AtLeast("f", args, 3, pos); err == nil {
		t.Error("AtLeast(2, 3) should have returned an error")
	}
}

func TestNumberTypeMismatch(t *testing.T) {
	args := []*value.Value{value.Str("nope", pos)}
	if _, err := Number("f", args, 0); err == nil {
		t.Error("Number() on a string argument should have returned an error")
	}
}

func TestStrTypeMismatch(t *testing.T) {
	args := []*value.Value{value.Num(1, pos)}
	if _, err := Str("f", args, 0); err == nil {
		t.Error("Str() on a number argument should have returned an error")
	}
}

func TestListTypeMismatch(t *testing.T) {
	args := []*value.Value{value.Num(1, pos)}
	if _, err := List("f", args, 0); err == nil {
		t.Error("List() on a number argument should have returned an error")
	}
}

func TestClosureTypeMismatch(t *testing.T) {
	args := []*value.Value{value.Num(1, pos)}
	if _, err := Closure("f", args, 0); err == nil {
		t.Error("Closure() on a number argument should have returned an error")
	}
}

func TestBooleanTypeMismatch(t *testing.T) {
	if _, err := Boolean("f", value.Num(1, pos)); err == nil {
		t.Error("Boolean() on a number should have returned an error")
	}
}
