// Package argcheck holds the small arity/type-checking helpers shared by
// every stdlib subpackage, so each intrinsic's arity and type contract
// reads the same way the original C std/*.c files enforce theirs.
package argcheck

import (
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/value"
)

func toUtilPos(pos token.Position) util.Position {
	return util.Position{Line: pos.Line, Column: pos.Column}
}

// Exactly requires args to have exactly n elements.
func Exactly(name string, args []*value.Value, n int, pos token.Position) error {
	if len(args) != n {
		return util.NewRuntimeError(util.ErrTypeUnexpectedArity, toUtilPos(pos),
			"%s expects exactly %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// AtLeast requires args to have at least n elements.
func AtLeast(name string, args []*value.Value, n int, pos token.Position) error {
	if len(args) < n {
		return util.NewRuntimeError(util.ErrTypeUnexpectedArity, toUtilPos(pos),
			"%s expects at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// Number requires args[i] to be a NUMBER, returning its float64 value.
func Number(name string, args []*value.Value, i int) (float64, error) {
	v := args[i]
	if v.Kind != value.NUMBER {
		return 0, util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(v.Position),
			"%s expects argument %d to be a number, got %s", name, i+1, v.Kind)
	}
	return v.Number, nil
}

// Str requires args[i] to be a STRING, returning its value.
func Str(name string, args []*value.Value, i int) (string, error) {
	v := args[i]
	if v.Kind != value.STRING {
		return "", util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(v.Position),
			"%s expects argument %d to be a string, got %s", name, i+1, v.Kind)
	}
	return v.Str, nil
}

// List requires args[i] to be a LIST, returning its elements.
func List(name string, args []*value.Value, i int) ([]*value.Value, error) {
	v := args[i]
	if v.Kind != value.LIST {
		return nil, util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(v.Position),
			"%s expects argument %d to be a list, got %s", name, i+1, v.Kind)
	}
	return v.List, nil
}

// Closure requires args[i] to be a CLOSURE, returning it.
func Closure(name string, args []*value.Value, i int) (*value.Value, error) {
	v := args[i]
	if v.Kind != value.CLOSURE {
		return nil, util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(v.Position),
			"%s expects argument %d to be a function, got %s", name, i+1, v.Kind)
	}
	return v, nil
}

// Boolean requires v to be a BOOLEAN, returning its value.
func Boolean(name string, v *value.Value) (bool, error) {
	if v.Kind != value.BOOLEAN {
		return false, util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(v.Position),
			"%s expects a boolean result, got %s", name, v.Kind)
	}
	return v.Boolean, nil
}

// RuntimeError builds a plain RUNTIME_ERROR-classified error at pos,
// for intrinsic-specific failures that aren't arity or type mismatches.
func RuntimeError(pos token.Position, format string, args ...interface{}) error {
	return util.NewRuntimeError(util.ErrRuntime, toUtilPos(pos), format, args...)
}
