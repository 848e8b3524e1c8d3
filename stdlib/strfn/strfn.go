// Package strfn implements lifp's str:* string intrinsics.
//
//	(str:length "hello") ; returns 5
//	(str:join "," ("a" "b" "c")) ; returns "a,b,c"
//	(str:slice "abcdef" 1 4) ; returns "bcd"
//	(str:include? "hello world" "world") ; returns true
//	(str:trimLeft "   foo") ; returns "foo"
//	(str:trimRight "foo   ") ; returns "foo"
package strfn

import (
	"strings"

	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Register installs the str:* intrinsics into builtins.
func Register(builtins *value.Map) {
	builtins.Set("str:length", &value.Value{Kind: value.BUILTIN, Builtin: length})
	builtins.Set("str:join", &value.Value{Kind: value.BUILTIN, Builtin: join})
	builtins.Set("str:slice", &value.Value{Kind: value.BUILTIN, Builtin: slice})
	builtins.Set("str:include?", &value.Value{Kind: value.BUILTIN, Builtin: include})
	builtins.Set("str:trimLeft", &value.Value{Kind: value.BUILTIN, Builtin: trimLeft})
	builtins.Set("str:trimRight", &value.Value{Kind: value.BUILTIN, Builtin: trimRight})
}

// length returns the number of bytes in a string.
//
//	(str:length "hello") ; returns 5
func length(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("str:length", args, 1, pos); err != nil {
		return nil, err
	}
	s, err := argcheck.Str("str:length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Num(float64(len(s)), pos), nil
}

// join concatenates a list of strings using separator.
//
//	(str:join "," ("a" "b" "c")) ; returns "a,b,c"
func join(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("str:join", args, 2, pos); err != nil {
		return nil, err
	}
	sep, err := argcheck.Str("str:join", args, 0)
	if err != nil {
		return nil, err
	}
	items, err := argcheck.List("str:join", args, 1)
	if err != nil {
		return nil, err
	}

	parts := make([]string, len(items))
	for i, item := range items {
		if item.Kind != value.STRING {
			return nil, argcheck.RuntimeError(item.Position, "str:join requires a list of strings. Got %s.", item.Kind)
		}
		parts[i] = item.Str
	}
	return value.Str(strings.Join(parts, sep), pos), nil
}

// slice returns the substring [start, end), with negative indices counting
// from the end of the string and both bounds clamped to [0, len(str)].
//
//	(str:slice "abcdef" 1 4) ; returns "bcd"
//	(str:slice "abcdef" 2) ; returns "cdef"
func slice(args []*value.Value, pos token.Position) (*value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, argcheck.RuntimeError(pos, "str:slice requires 2 or 3 arguments. Got %d", len(args))
	}
	s, err := argcheck.Str("str:slice", args, 0)
	if err != nil {
		return nil, err
	}
	startNum, err := argcheck.Number("str:slice", args, 1)
	if err != nil {
		return nil, err
	}

	strLen := len(s)
	start := clampIndex(int(startNum), strLen)

	end := strLen
	if len(args) == 3 {
		endNum, err := argcheck.Number("str:slice", args, 2)
		if err != nil {
			return nil, err
		}
		end = clampIndex(int(endNum), strLen)
	}

	if start > end {
		start = end
	}

	return value.Str(s[start:end], pos), nil
}

func clampIndex(n, strLen int) int {
	if n < 0 {
		n = strLen + n
	}
	if n < 0 {
		n = 0
	}
	if n > strLen {
		n = strLen
	}
	return n
}

// include reports whether str contains search as a substring.
//
//	(str:include? "hello world" "world") ; returns true
func include(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("str:include?", args, 2, pos); err != nil {
		return nil, err
	}
	s, err := argcheck.Str("str:include?", args, 0)
	if err != nil {
		return nil, err
	}
	search, err := argcheck.Str("str:include?", args, 1)
	if err != nil {
		return nil, err
	}
	return value.Bool(strings.Contains(s, search), pos), nil
}

// trimLeft removes leading whitespace.
//
//	(str:trimLeft "   foo") ; returns "foo"
func trimLeft(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("str:trimLeft", args, 1, pos); err != nil {
		return nil, err
	}
	s, err := argcheck.Str("str:trimLeft", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Str(strings.TrimLeft(s, " \t\n\r\v\f"), pos), nil
}

// trimRight removes trailing whitespace.
//
//	(str:trimRight "foo   ") ; returns "foo"
func trimRight(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("str:trimRight", args, 1, pos); err != nil {
		return nil, err
	}
	s, err := argcheck.Str("str:trimRight", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Str(strings.TrimRight(s, " \t\n\r\v\f"), pos), nil
}
