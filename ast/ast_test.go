package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopyIsStructurallyEqual(t *testing.T) {
	original := &Node{
		Kind: LIST,
		Children: []*Node{
			{Kind: SYMBOL, Symbol: "+"},
			{Kind: NUMBER, Number: 1},
			{Kind: STRING, Str: "hi"},
		},
	}

	cp := original.Copy()
	if diff := cmp.Diff(original, cp); diff != "" {
		t.Errorf("Copy() produced a structurally different tree (-want +got):\n%s", diff)
	}
}

func TestCopyIsDeep(t *testing.T) {
	original := &Node{
		Kind: LIST,
		Children: []*Node{
			{Kind: SYMBOL, Symbol: "+"},
			{Kind: NUMBER, Number: 1},
		},
	}

	cp := original.Copy()
	cp.Children[1].Number = 99

	if original.Children[1].Number != 1 {
		t.Errorf("Copy mutated the original: got %v, want 1", original.Children[1].Number)
	}
	if cp.Children[0] == original.Children[0] {
		t.Error("Copy shares child pointers with the original")
	}
}

func TestCopyNil(t *testing.T) {
	var n *Node
	if got := n.Copy(); got != nil {
		t.Errorf("Copy() on nil = %v, want nil", got)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		LIST:     "list",
		NUMBER:   "number",
		SYMBOL:   "symbol",
		STRING:   "string",
		BOOLEAN:  "boolean",
		NIL:      "nil",
		Kind(99): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
