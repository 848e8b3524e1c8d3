package strfn

import (
	"testing"

	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

var pos = token.Position{Line: 1, Column: 1}

func builtin(builtins *value.Map, name string) value.Builtin {
	v, ok := builtins.Get(name)
	if !ok {
		panic("builtin not registered: " + name)
	}
	return v.Builtin
}

func TestLength(t *testing.T) {
	builtins := value.NewMap(8)
	Register(builtins)

	result, err := builtin(builtins, "str:length")([]*value.Value{value.Str("hello", pos)}, pos)
	if err != nil || result.Number != 5 {
		t.Fatalf("str:length = (%v, %v), want (5, nil)", result, err)
	}
}

func TestJoin(t *testing.T) {
	builtins := value.NewMap(8)
	Register(builtins)

	list := value.List([]*value.Value{value.Str("a", pos), value.Str("b", pos), value.Str("c", pos)}, pos)
	result, err := builtin(builtins, "str:join")([]*value.Value{value.Str(",", pos), list}, pos)
	if err != nil || result.Str != "a,b,c" {
		t.Fatalf("str:join = (%v, %v), want (a,b,c, nil)", result, err)
	}
}

func TestSlice(t *testing.T) {
	builtins := value.NewMap(8)
	Register(builtins)

	cases := []struct {
		args []*value.Value
		want string
	}{
		{[]*value.Value{value.Str("abcdef", pos), value.Num(1, pos), value.Num(4, pos)}, "bcd"},
		{[]*value.Value{value.Str("abcdef", pos), value.Num(2, pos)}, "cdef"},
		{[]*value.Value{value.Str("abcdef", pos), value.Num(-2, pos)}, "ef"},
	}
	for _, c := range cases {
		result, err := builtin(builtins, "str:slice")(c.args, pos)
		if err != nil {
			t.Fatalf("str:slice returned error: %v", err)
		}
		if result.Str != c.want {
			t.Errorf("str:slice(%v) = %q, want %q", c.args, result.Str, c.want)
		}
	}
}

func TestInclude(t *testing.T) {
	builtins := value.NewMap(8)
	Register(builtins)

	result, err := builtin(builtins, "str:include?")([]*value.Value{value.Str("hello world", pos), value.Str("world", pos)}, pos)
	if err != nil || !result.Boolean {
		t.Fatalf("str:include? = (%v, %v), want (true, nil)", result, err)
	}
}

func TestTrim(t *testing.T) {
	builtins := value.NewMap(8)
	Register(builtins)

	left, err := builtin(builtins, "str:trimLeft")([]*value.Value{value.Str("   foo", pos)}, pos)
	if err != nil || left.Str != "foo" {
		t.Fatalf("str:trimLeft = (%v, %v), want (foo, nil)", left, err)
	}
	right, err := builtin(builtins, "str:trimRight")([]*value.Value{value.Str("foo   ", pos)}, pos)
	if err != nil || right.Str != "foo" {
		t.Fatalf("str:trimRight = (%v, %v), want (foo, nil)", right, err)
	}
}
