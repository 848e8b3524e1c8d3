// Package mathfn implements lifp's math:* intrinsics.
//
//	(math:max 1 2 3) ; returns 3
//	(math:min 1 2 3) ; returns 1
//	(math:random!) ; returns a random number between 0 and 1
//	(math:ceil 2.3) ; returns 3
//	(math:floor 2.7) ; returns 2
package mathfn

import (
	"math"
	"math/rand"

	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Register installs the math:* intrinsics into builtins.
func Register(builtins *value.Map) {
	builtins.Set("math:max", &value.Value{Kind: value.BUILTIN, Builtin: max})
	builtins.Set("math:min", &value.Value{Kind: value.BUILTIN, Builtin: min})
	builtins.Set("math:random!", &value.Value{Kind: value.BUILTIN, Builtin: random})
	builtins.Set("math:ceil", &value.Value{Kind: value.BUILTIN, Builtin: ceil})
	builtins.Set("math:floor", &value.Value{Kind: value.BUILTIN, Builtin: floor})
}

// max returns the largest of its numeric arguments.
//
//	(math:max 1 2 3) ; returns 3
func max(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("math:max", args, 1, pos); err != nil {
		return nil, err
	}
	result := math.Inf(-1)
	for i := range args {
		n, err := argcheck.Number("math:max", args, i)
		if err != nil {
			return nil, err
		}
		if n > result {
			result = n
		}
	}
	return value.Num(result, pos), nil
}

// min returns the smallest of its numeric arguments.
//
//	(math:min 1 2 3) ; returns 1
func min(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("math:min", args, 1, pos); err != nil {
		return nil, err
	}
	result := math.Inf(1)
	for i := range args {
		n, err := argcheck.Number("math:min", args, i)
		if err != nil {
			return nil, err
		}
		if n < result {
			result = n
		}
	}
	return value.Num(result, pos), nil
}

// random returns a pseudo-random number in [0, 1).
//
//	(math:random!) ; returns a random number between 0 and 1
func random(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("math:random!", args, 0, pos); err != nil {
		return nil, err
	}
	return value.Num(rand.Float64(), pos), nil
}

// ceil rounds up to the nearest integer.
//
//	(math:ceil 2.3) ; returns 3
func ceil(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("math:ceil", args, 1, pos); err != nil {
		return nil, err
	}
	n, err := argcheck.Number("math:ceil", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Num(math.Ceil(n), pos), nil
}

// floor rounds down to the nearest integer.
//
//	(math:floor 2.7) ; returns 2
func floor(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("math:floor", args, 1, pos); err != nil {
		return nil, err
	}
	n, err := argcheck.Number("math:floor", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Num(math.Floor(n), pos), nil
}
