// Package value defines the runtime value model lifp programs evaluate to:
// a small tagged union plus the string-keyed map used to back environments.
package value

import (
	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/token"
)

// Kind identifies the runtime type tag of a Value.
type Kind int

const (
	NIL Kind = iota
	BOOLEAN
	NUMBER
	STRING
	LIST
	BUILTIN
	SPECIAL
	CLOSURE
)

func (k Kind) String() string {
	switch k {
	case NIL:
		return "nil"
	case BOOLEAN:
		return "boolean"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case LIST:
		return "list"
	case BUILTIN:
		return "builtin"
	case SPECIAL:
		return "special"
	case CLOSURE:
		return "function"
	default:
		return "unknown"
	}
}

// Builtin is a native intrinsic: it receives the already-evaluated argument
// list and the position of the call site.
type Builtin func(args []*Value, pos token.Position) (*Value, error)

// Trampoline lets a SPECIAL form ask the evaluator's dispatch loop to
// rebind (node, env) and continue, instead of recursing, so a restricted
// class of tail calls does not grow the Go call stack.
type Trampoline struct {
	More        bool
	Node        *ast.Node
	Environment Env
}

// Env is the minimal interface the value package needs from an
// environment, broken out to avoid an import cycle between value and
// environment (a CLOSURE's captured_env is an Env; SPECIAL forms likewise
// receive one).
type Env interface {
	Resolve(name string) (*Value, bool)
}

// Special is a native special form: it receives the unevaluated call
// (including its own head symbol), the calling environment, and an
// out-parameter used to request a trampoline bounce.
type Special func(nodes []*ast.Node, env Env, tr *Trampoline) (*Value, error)

// Closure is a user-defined function value: an owned copy of its body
// form, its parameter names, and the environment captured at creation.
type Closure struct {
	Form         *ast.Node
	Parameters   []string
	CapturedEnv  Env
}

// Value is a tagged runtime value. Each carries the position of the call
// or literal site that produced it.
type Value struct {
	Kind     Kind
	Position token.Position

	Boolean bool
	Number  float64
	Str     string
	List    []*Value
	Builtin Builtin
	Special Special
	Closure Closure
}

// Nil returns a NIL value positioned at pos.
func Nil(pos token.Position) *Value {
	return &Value{Kind: NIL, Position: pos}
}

// Bool returns a BOOLEAN value positioned at pos.
func Bool(b bool, pos token.Position) *Value {
	return &Value{Kind: BOOLEAN, Boolean: b, Position: pos}
}

// Num returns a NUMBER value positioned at pos.
func Num(n float64, pos token.Position) *Value {
	return &Value{Kind: NUMBER, Number: n, Position: pos}
}

// Str returns a STRING value positioned at pos.
func Str(s string, pos token.Position) *Value {
	return &Value{Kind: STRING, Str: s, Position: pos}
}

// List returns a LIST value positioned at pos.
func List(items []*Value, pos token.Position) *Value {
	return &Value{Kind: LIST, List: items, Position: pos}
}

// DeepCopy returns an independent copy of v, duplicating any substructure:
// strings are copied, lists are recursively copied, closures copy their
// captured environment by reference (it is itself a stable, owned store)
// but their form is already owned and need not be re-copied on every
// resolution. Scalars copy trivially.
func (v *Value) DeepCopy() *Value {
	if v == nil {
		return nil
	}
	cp := *v
	if v.Kind == LIST {
		cp.List = make([]*Value, len(v.List))
		for i, item := range v.List {
			cp.List[i] = item.DeepCopy()
		}
	}
	return &cp
}

// WithPosition returns a shallow copy of v with its position rewritten to
// pos. Symbol resolution rewrites the position to the reference site so
// error messages point at the use, not the original binding.
func (v *Value) WithPosition(pos token.Position) *Value {
	cp := v.DeepCopy()
	cp.Position = pos
	return cp
}

// Equal implements lifp's `=` semantics: tags must match; numbers and
// booleans compare by ==, strings by byte equality, nil is always equal to
// nil, builtins/specials by pointer identity of the enclosing Value (Go
// func values cannot be compared with ==), so two distinct Values wrapping
// the same function compare unequal; lists and closures are never equal.
func (v *Value) Equal(other *Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case NIL:
		return true
	case BOOLEAN:
		return v.Boolean == other.Boolean
	case NUMBER:
		return v.Number == other.Number
	case STRING:
		return v.Str == other.Str
	case LIST, CLOSURE:
		return false
	case BUILTIN, SPECIAL:
		return v == other
	default:
		return false
	}
}
