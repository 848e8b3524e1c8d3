// Package core implements lifp's arithmetic, comparison, and logic
// intrinsics - the operators that, for all intents and purposes, should be
// thought of as language keywords.
//
//	(and true false) ; returns false
package core

import (
	"math"

	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Register installs the core operators into builtins.
func Register(builtins *value.Map) {
	builtins.Set("+", &value.Value{Kind: value.BUILTIN, Builtin: sum})
	builtins.Set("-", &value.Value{Kind: value.BUILTIN, Builtin: subtract})
	builtins.Set("*", &value.Value{Kind: value.BUILTIN, Builtin: multiply})
	builtins.Set("/", &value.Value{Kind: value.BUILTIN, Builtin: divide})
	builtins.Set("%", &value.Value{Kind: value.BUILTIN, Builtin: modulo})
	builtins.Set("=", &value.Value{Kind: value.BUILTIN, Builtin: equal})
	builtins.Set("<>", &value.Value{Kind: value.BUILTIN, Builtin: notEqual})
	builtins.Set("<", &value.Value{Kind: value.BUILTIN, Builtin: lessThan})
	builtins.Set(">", &value.Value{Kind: value.BUILTIN, Builtin: greaterThan})
	builtins.Set("<=", &value.Value{Kind: value.BUILTIN, Builtin: lessEqual})
	builtins.Set(">=", &value.Value{Kind: value.BUILTIN, Builtin: greaterEqual})
	builtins.Set("and", &value.Value{Kind: value.BUILTIN, Builtin: logicalAnd})
	builtins.Set("or", &value.Value{Kind: value.BUILTIN, Builtin: logicalOr})
}

// sum adds its arguments.
//
//	(+ 1 2 3) ; returns 6
func sum(args []*value.Value, pos token.Position) (*value.Value, error) {
	total := 0.0
	for i := range args {
		n, err := argcheck.Number("+", args, i)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return value.Num(total, pos), nil
}

// subtract subtracts the rest of its arguments from the first.
//
//	(- 6 3 2) ; returns 1
func subtract(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("-", args, 1, pos); err != nil {
		return nil, err
	}
	result, err := argcheck.Number("-", args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := argcheck.Number("-", args, i)
		if err != nil {
			return nil, err
		}
		result -= n
	}
	return value.Num(result, pos), nil
}

// multiply multiplies its arguments.
//
//	(* 1 2 3) ; returns 6
func multiply(args []*value.Value, pos token.Position) (*value.Value, error) {
	total := 1.0
	for i := range args {
		n, err := argcheck.Number("*", args, i)
		if err != nil {
			return nil, err
		}
		total *= n
	}
	return value.Num(total, pos), nil
}

// divide divides the first argument by the rest, left to right.
//
//	(/ 6 3 2) ; returns 1
func divide(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("/", args, 1, pos); err != nil {
		return nil, err
	}
	result, err := argcheck.Number("/", args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := argcheck.Number("/", args, i)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, argcheck.RuntimeError(args[i].Position, "/ division by zero")
		}
		result /= n
	}
	return value.Num(result, pos), nil
}

// modulo computes a floating-point remainder.
//
//	(% 6 3) ; returns 0
func modulo(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("%", args, 2, pos); err != nil {
		return nil, err
	}
	a, err := argcheck.Number("%", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := argcheck.Number("%", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, argcheck.RuntimeError(args[1].Position, "%% modulo by zero")
	}
	return value.Num(math.Mod(a, b), pos), nil
}

// equal reports whether its two arguments are equal. Lists and closures
// are never equal.
//
//	(= 6 6) ; returns true
func equal(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("=", args, 2, pos); err != nil {
		return nil, err
	}
	return value.Bool(args[0].Equal(args[1]), pos), nil
}

// notEqual is the negation of equal.
//
//	(<> 6 6) ; returns false
func notEqual(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("<>", args, 2, pos); err != nil {
		return nil, err
	}
	return value.Bool(!args[0].Equal(args[1]), pos), nil
}

// lessThan reports whether its arguments are in strictly ascending order.
//
//	(< 1 6) ; returns true
func lessThan(args []*value.Value, pos token.Position) (*value.Value, error) {
	return chainCompare("<", args, pos, func(a, b float64) bool { return a < b })
}

// greaterThan reports whether its arguments are in strictly descending
// order.
//
//	(> 1 6) ; returns false
func greaterThan(args []*value.Value, pos token.Position) (*value.Value, error) {
	return chainCompare(">", args, pos, func(a, b float64) bool { return a > b })
}

// lessEqual reports whether its arguments are non-decreasing.
//
//	(<= 1 6) ; returns true
func lessEqual(args []*value.Value, pos token.Position) (*value.Value, error) {
	return chainCompare("<=", args, pos, func(a, b float64) bool { return a <= b })
}

// greaterEqual reports whether its arguments are non-increasing.
//
//	(>= 6 1) ; returns true
func greaterEqual(args []*value.Value, pos token.Position) (*value.Value, error) {
	return chainCompare(">=", args, pos, func(a, b float64) bool { return a >= b })
}

func chainCompare(name string, args []*value.Value, pos token.Position, ok func(a, b float64) bool) (*value.Value, error) {
	if err := argcheck.AtLeast(name, args, 2, pos); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(args); i++ {
		left, err := argcheck.Number(name, args, i)
		if err != nil {
			return nil, err
		}
		right, err := argcheck.Number(name, args, i+1)
		if err != nil {
			return nil, err
		}
		if !ok(left, right) {
			return value.Bool(false, pos), nil
		}
	}
	return value.Bool(true, pos), nil
}

// logicalAnd reports whether all of its boolean arguments are true.
//
//	(and true false) ; returns false
func logicalAnd(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("and", args, 2, pos); err != nil {
		return nil, err
	}
	for _, a := range args {
		b, err := argcheck.Boolean("and", a)
		if err != nil {
			return nil, err
		}
		if !b {
			return value.Bool(false, pos), nil
		}
	}
	return value.Bool(true, pos), nil
}

// logicalOr reports whether any of its boolean arguments is true.
//
//	(or true false) ; returns true
func logicalOr(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("or", args, 2, pos); err != nil {
		return nil, err
	}
	for _, a := range args {
		b, err := argcheck.Boolean("or", a)
		if err != nil {
			return nil, err
		}
		if b {
			return value.Bool(true, pos), nil
		}
	}
	return value.Bool(false, pos), nil
}
