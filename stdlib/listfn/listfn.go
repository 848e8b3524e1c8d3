// Package listfn implements lifp's list:* intrinsics: counting, creating,
// accessing, mapping, filtering, and iterating over lists.
//
//	(list:count (list:from 1 2 3)) ; returns 3
//	(list:nth 1 (list:from 10 20 30)) ; returns 20
//	(list:map (fn (x i) (* x 2)) (list:from 1 2 3)) ; returns (2 4 6)
package listfn

import (
	"math"

	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Invoke calls a CLOSURE value with already-evaluated arguments. It is
// supplied by the vm package, which owns closure invocation (call-stack
// depth guard, environment binding); listfn has no dependency on vm
// itself, avoiding an import cycle.
type Invoke func(closure *value.Value, args []*value.Value) (*value.Value, error)

// Register installs the list:* intrinsics into builtins, closing over
// invoke for the ones that call back into a closure argument.
func Register(builtins *value.Map, invoke Invoke) {
	builtins.Set("list:count", &value.Value{Kind: value.BUILTIN, Builtin: count})
	builtins.Set("list:from", &value.Value{Kind: value.BUILTIN, Builtin: from})
	builtins.Set("list:nth", &value.Value{Kind: value.BUILTIN, Builtin: nth})
	builtins.Set("list:map", &value.Value{Kind: value.BUILTIN, Builtin: mapFn(invoke)})
	builtins.Set("list:each", &value.Value{Kind: value.BUILTIN, Builtin: eachFn(invoke)})
	builtins.Set("list:filter", &value.Value{Kind: value.BUILTIN, Builtin: filterFn(invoke)})
	builtins.Set("list:times", &value.Value{Kind: value.BUILTIN, Builtin: timesFn(invoke)})
	builtins.Set("list:reduce", &value.Value{Kind: value.BUILTIN, Builtin: reduceFn(invoke)})
}

// count returns the number of elements in a list.
//
//	(list:count (1 2 3)) ; returns 3
func count(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("list:count", args, 1, pos); err != nil {
		return nil, err
	}
	items, err := argcheck.List("list:count", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Num(float64(len(items)), pos), nil
}

// from builds a list out of its (deep-copied) arguments.
//
//	(list:from 1 2 3) ; returns (1 2 3)
func from(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("list:from", args, 1, pos); err != nil {
		return nil, err
	}
	items := make([]*value.Value, len(args))
	for i, a := range args {
		items[i] = a.DeepCopy()
	}
	return value.List(items, pos), nil
}

// nth returns the element at index, or NIL if index is out of bounds or
// non-integral.
//
//	(list:nth 1 (10 20 30)) ; returns 20
func nth(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.Exactly("list:nth", args, 2, pos); err != nil {
		return nil, err
	}
	index, err := argcheck.Number("list:nth", args, 0)
	if err != nil {
		return nil, err
	}
	items, err := argcheck.List("list:nth", args, 1)
	if err != nil {
		return nil, err
	}

	if index < 0 || int(index) >= len(items) || index != math.Trunc(index) {
		return value.Nil(pos), nil
	}
	return items[int(index)].DeepCopy(), nil
}

// mapFn returns the list:map builtin: applies fn to each (element, index)
// pair, collecting results into a new list.
//
//	(list:map (fn (x i) (* x 2)) (1 2 3)) ; returns (2 4 6)
func mapFn(invoke Invoke) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("list:map", args, 2, pos); err != nil {
			return nil, err
		}
		closure, err := argcheck.Closure("list:map", args, 0)
		if err != nil {
			return nil, err
		}
		items, err := argcheck.List("list:map", args, 1)
		if err != nil {
			return nil, err
		}

		mapped := make([]*value.Value, len(items))
		for i, item := range items {
			result, err := invoke(closure, []*value.Value{item, value.Num(float64(i), item.Position)})
			if err != nil {
				return nil, err
			}
			mapped[i] = result
		}
		return value.List(mapped, pos), nil
	}
}

// eachFn returns the list:each builtin: applies fn to each (element,
// index) pair for side effects only, always returning NIL.
//
//	(list:each (fn (x i) (io:stdout! x)) (1 2 3))
func eachFn(invoke Invoke) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("list:each", args, 2, pos); err != nil {
			return nil, err
		}
		closure, err := argcheck.Closure("list:each", args, 0)
		if err != nil {
			return nil, err
		}
		items, err := argcheck.List("list:each", args, 1)
		if err != nil {
			return nil, err
		}

		for i, item := range items {
			if _, err := invoke(closure, []*value.Value{item, value.Num(float64(i), item.Position)}); err != nil {
				return nil, err
			}
		}
		return value.Nil(pos), nil
	}
}

// filterFn returns the list:filter builtin: keeps the elements for which
// the predicate returns true. Unlike the original C implementation (which
// collects the matching index rather than the matching element - an
// unintentional bug), this collects the element itself.
//
//	(list:filter (fn (x i) (> x 1)) (1 2 3)) ; returns (2 3)
func filterFn(invoke Invoke) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("list:filter", args, 2, pos); err != nil {
			return nil, err
		}
		closure, err := argcheck.Closure("list:filter", args, 0)
		if err != nil {
			return nil, err
		}
		items, err := argcheck.List("list:filter", args, 1)
		if err != nil {
			return nil, err
		}

		filtered := make([]*value.Value, 0, len(items))
		for i, item := range items {
			result, err := invoke(closure, []*value.Value{item, value.Num(float64(i), item.Position)})
			if err != nil {
				return nil, err
			}
			keep, err := argcheck.Boolean("list:filter", result)
			if err != nil {
				return nil, err
			}
			if keep {
				filtered = append(filtered, item.DeepCopy())
			}
		}
		return value.List(filtered, pos), nil
	}
}

// timesFn returns the list:times builtin: calls fn with each index from 0
// to count-1, collecting results into a list.
//
//	(list:times (fn (i) (* i 2)) 3) ; returns (0 2 4)
func timesFn(invoke Invoke) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("list:times", args, 2, pos); err != nil {
			return nil, err
		}
		closure, err := argcheck.Closure("list:times", args, 0)
		if err != nil {
			return nil, err
		}
		repeats, err := argcheck.Number("list:times", args, 1)
		if err != nil {
			return nil, err
		}

		n := int(repeats)
		results := make([]*value.Value, n)
		for i := 0; i < n; i++ {
			result, err := invoke(closure, []*value.Value{value.Num(float64(i), pos)})
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
		return value.List(results, pos), nil
	}
}

// reduceFn returns the list:reduce builtin: folds fn over list starting
// from initial, passing (accumulator, current, index) on each call.
//
//	(list:reduce (fn (p c i) (+ p c)) 0 (1 2 3)) ; returns 6
func reduceFn(invoke Invoke) value.Builtin {
	return func(args []*value.Value, pos token.Position) (*value.Value, error) {
		if err := argcheck.Exactly("list:reduce", args, 3, pos); err != nil {
			return nil, err
		}
		closure, err := argcheck.Closure("list:reduce", args, 0)
		if err != nil {
			return nil, err
		}
		initial := args[1]
		items, err := argcheck.List("list:reduce", args, 2)
		if err != nil {
			return nil, err
		}

		accum := initial.DeepCopy()
		for i, item := range items {
			result, err := invoke(closure, []*value.Value{accum, item, value.Num(float64(i), item.Position)})
			if err != nil {
				return nil, err
			}
			accum = result
		}
		return accum, nil
	}
}
