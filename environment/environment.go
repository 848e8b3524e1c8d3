// Package environment implements lifp's lexical scope chain: a value map
// plus an optional parent, consulted only after the process-wide specials
// and builtins registries.
package environment

import (
	"strings"

	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/value"
)

// NamespaceDelimiter separates an intrinsic's package from its name, e.g.
// "io:stdout!". def!/let/fn bindings may never contain it.
const NamespaceDelimiter = ":"

const defaultCapacity = 16

// Environment is a single scope: its own bindings plus a link to its
// parent. The global environment has a nil parent.
type Environment struct {
	parent   *Environment
	values   *value.Map
	specials *value.Map // nil except on the root: shared, read-only
	builtins *value.Map // nil except on the root: shared, read-only
}

// New creates a root environment pre-populated with the given specials and
// builtins registries. Those two maps are consulted ahead of the value
// chain on every resolution and are never mutated after creation.
func New(specials, builtins *value.Map, capacity int) *Environment {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Environment{
		values:   value.NewMap(capacity),
		specials: specials,
		builtins: builtins,
	}
}

// NewChild creates a scope whose parent is e. Children share e's specials
// and builtins registries by walking up to the root on every resolution
// rather than copying them.
func (e *Environment) NewChild() *Environment {
	return &Environment{
		values: value.NewMap(defaultCapacity),
		parent: e,
	}
}

func (e *Environment) root() *Environment {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Resolve implements value.Env: it looks the name up in the specials
// registry, then builtins, then walks the value chain from e to the root.
// This ordering means specials/builtins can never be shadowed by a
// def!/let/fn binding - shadow checks enforce that up front instead.
func (e *Environment) Resolve(name string) (*value.Value, bool) {
	root := e.root()
	if root.specials != nil {
		if v, ok := root.specials.Get(name); ok {
			return v, true
		}
	}
	if root.builtins != nil {
		if v, ok := root.builtins.Get(name); ok {
			return v, true
		}
	}
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// IsVisible reports whether name resolves anywhere reachable from e
// (specials, builtins, or any ancestor's values) - the shadow-check used by
// def!, let, and fn parameter binding.
func (e *Environment) IsVisible(name string) bool {
	_, ok := e.Resolve(name)
	return ok
}

// Register binds name to v in e's own value map, enforcing invariants 2
// and 3: the name may not contain the namespace delimiter, and it may not
// already be visible anywhere in scope.
func (e *Environment) Register(name string, v *value.Value, pos token.Position) error {
	if strings.Contains(name, NamespaceDelimiter) {
		return util.NewRuntimeError(util.ErrTypeUnexpected, toUtilPos(pos),
			"Symbol name %q may not contain %q", name, NamespaceDelimiter)
	}
	if e.IsVisible(name) {
		return util.NewRuntimeError(util.ErrReferenceSymbolAlreadyDefined, toUtilPos(pos),
			"Symbol %q is already defined", name)
	}
	e.values.Set(name, v)
	return nil
}

// UnsafeRegister binds name to v in e's own value map without the shadow
// check, and without failing if name is already bound locally (first
// registration wins). This is used exclusively by the closure capture
// walk, where the same name may legitimately appear more than once in a
// form.
func (e *Environment) UnsafeRegister(name string, v *value.Value) {
	if e.values.Has(name) {
		return
	}
	e.values.Set(name, v)
}

func toUtilPos(pos token.Position) util.Position {
	return util.Position{Line: pos.Line, Column: pos.Column}
}
