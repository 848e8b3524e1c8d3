// Package vm implements lifp's tree-walking evaluator: the dispatch loop
// over AST nodes, closure invocation, and the trampoline through which a
// special form can rebind (node, env) instead of growing the Go call stack.
// None of the built-in special forms uses the trampoline.
package vm

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/environment"
	"github.com/shikaan/lifp/stdlib"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/value"
)

// Options configures a new VM.
type Options struct {
	// EnvironmentSize is the initial capacity hint for the global
	// environment's value map.
	EnvironmentSize int
	// MaxCallStackSize bounds closure invocation depth; exceeding it
	// surfaces a RUNTIME_ERROR. Zero or a negative value selects the
	// default of 1024.
	MaxCallStackSize int
	// Streams wires the io:* intrinsics' stdout/stderr/stdin. Nil selects
	// the process's own standard streams.
	Streams *stdlib.Streams
}

const defaultMaxCallStackSize = 1024

// VM owns one lifp program's global environment and the specials/builtins
// registries consulted ahead of every environment lookup. It replaces the
// original runtime's pair of process-wide globals with an explicit,
// instantiable context so multiple independent programs can run in the
// same process without interfering with each other.
type VM struct {
	global           *environment.Environment
	specials         *value.Map
	builtins         *value.Map
	maxCallStackSize int
	callStack        *arraystack.Stack
}

// New creates a VM with its specials and builtins registries fully
// populated: the four special forms (def!, fn, let, cond) plus every
// stdlib intrinsic, the latter wired so list:map/each/filter/times/reduce
// can invoke user closures through the VM itself.
func New(opts Options) *VM {
	maxStack := opts.MaxCallStackSize
	if maxStack <= 0 {
		maxStack = defaultMaxCallStackSize
	}
	streams := opts.Streams
	if streams == nil {
		streams = stdlib.StandardStreams()
	}

	specials := value.NewMap(8)
	builtins := value.NewMap(64)

	vm := &VM{
		specials:         specials,
		builtins:         builtins,
		maxCallStackSize: maxStack,
		callStack:        arraystack.New(),
	}

	vm.RegisterSpecials(specials)
	stdlib.Register(builtins, vm.Invoke, streams)

	vm.global = environment.New(specials, builtins, opts.EnvironmentSize)
	return vm
}

// Global returns the VM's root environment.
func (vm *VM) Global() *environment.Environment {
	return vm.global
}

func toUtilPos(pos token.Position) util.Position {
	return util.Position{Line: pos.Line, Column: pos.Column}
}

// Evaluate walks node, dispatching atoms, symbol lookups, and list forms
// (builtin calls, special forms, closure calls, or plain data lists)
// exactly as the original evaluator's switch-in-a-loop: a SPECIAL form
// that requests a trampoline bounce rebinds (node, env) and continues the
// loop instead of recursing.
func (vm *VM) Evaluate(node *ast.Node, env *environment.Environment) (*value.Value, error) {
	for {
		switch node.Kind {
		case ast.BOOLEAN:
			return value.Bool(node.Boolean, node.Position), nil

		case ast.NUMBER:
			return value.Num(node.Number, node.Position), nil

		case ast.NIL:
			return value.Nil(node.Position), nil

		case ast.STRING:
			return value.Str(node.Str, node.Position), nil

		case ast.SYMBOL:
			found, ok := env.Resolve(node.Symbol)
			if !ok {
				return nil, util.NewRuntimeError(util.ErrReferenceSymbolNotFound, toUtilPos(node.Position),
					"Symbol '%s' cannot be found in the current environment", node.Symbol)
			}
			return found.WithPosition(node.Position), nil

		case ast.LIST:
			if len(node.Children) == 0 {
				return value.List(nil, node.Position), nil
			}

			head := node.Children[0]
			scratch, err := vm.Evaluate(head, env)
			if err != nil {
				return nil, err
			}

			switch scratch.Kind {
			case value.BUILTIN:
				args := make([]*value.Value, 0, len(node.Children)-1)
				for _, child := range node.Children[1:] {
					v, err := vm.Evaluate(child, env)
					if err != nil {
						return nil, err
					}
					args = append(args, v)
				}
				return scratch.Builtin(args, node.Position)

			case value.SPECIAL:
				var tr value.Trampoline
				result, err := scratch.Special(node.Children, env, &tr)
				if err != nil {
					return nil, err
				}
				if tr.More {
					nextEnv, ok := tr.Environment.(*environment.Environment)
					if !ok {
						return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(node.Position),
							"Internal error: trampoline produced an invalid environment")
					}
					node = tr.Node
					env = nextEnv
					continue
				}
				return result, nil

			case value.CLOSURE:
				args := make([]*value.Value, 0, len(node.Children)-1)
				for _, child := range node.Children[1:] {
					v, err := vm.Evaluate(child, env)
					if err != nil {
						return nil, err
					}
					args = append(args, v)
				}
				return vm.invokeClosure(scratch, args)

			default:
				items := make([]*value.Value, 0, len(node.Children))
				items = append(items, scratch)
				for _, child := range node.Children[1:] {
					v, err := vm.Evaluate(child, env)
					if err != nil {
						return nil, err
					}
					items = append(items, v)
				}
				return value.List(items, node.Position), nil
			}

		default:
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(node.Position), "Unknown construct")
		}
	}
}

// Invoke calls a CLOSURE value with already-evaluated arguments. It
// satisfies stdlib/listfn.Invoke, letting list:map and friends call back
// into user closures without the stdlib package importing vm.
func (vm *VM) Invoke(closure *value.Value, args []*value.Value) (*value.Value, error) {
	return vm.invokeClosure(closure, args)
}

// invokeClosure binds args positionally into a fresh child of the
// closure's captured environment and evaluates its form. Arity is checked
// as a floor: surplus arguments are silently ignored, matching the
// original C runtime.
func (vm *VM) invokeClosure(closureValue *value.Value, args []*value.Value) (*value.Value, error) {
	closure := closureValue.Closure

	if len(args) < len(closure.Parameters) {
		return nil, util.NewRuntimeError(util.ErrTypeUnexpectedArity, toUtilPos(closureValue.Position),
			"Unexpected arity. Expected %d arguments, got %d.", len(closure.Parameters), len(args))
	}

	capturedEnv, ok := closure.CapturedEnv.(*environment.Environment)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(closureValue.Position),
			"Internal error: closure has an invalid captured environment")
	}

	vm.callStack.Push(struct{}{})
	defer vm.callStack.Pop()
	if vm.callStack.Size() > vm.maxCallStackSize {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(closureValue.Position),
			"Maximum call stack size of %d exceeded", vm.maxCallStackSize)
	}

	local := capturedEnv.NewChild()
	for i, name := range closure.Parameters {
		local.UnsafeRegister(name, args[i])
	}

	return vm.Evaluate(closure.Form, local)
}
