package vm

import (
	"strings"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/environment"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/value"
)

const (
	exampleDefine   = "(def! x (+ 1 2))"
	exampleFunction = "(fn (a b) (+ a b))"
	exampleLet      = "(let ((a 1) (b 2)) (+ a b))"
	exampleCond     = "\n  (cond\n    ((<> x 0) (/ 10 x))\n    (+ x 10))"
)

// RegisterSpecials installs def!, fn, let, and cond into specials, bound to
// vm so they can recursively call back into vm.Evaluate.
func (vm *VM) RegisterSpecials(specials *value.Map) {
	specials.Set("def!", &value.Value{Kind: value.SPECIAL, Special: vm.define})
	specials.Set("fn", &value.Value{Kind: value.SPECIAL, Special: vm.function})
	specials.Set("let", &value.Value{Kind: value.SPECIAL, Special: vm.let})
	specials.Set("cond", &value.Value{Kind: value.SPECIAL, Special: vm.cond})
}

// captureEnvironment walks form, and for every SYMBOL node whose name
// resolves in source to a non-special, non-builtin value, registers that
// binding into destination without a shadow check (first registration
// wins, since the same name may legitimately recur in the form).
func captureEnvironment(form *ast.Node, source, destination *environment.Environment) {
	switch form.Kind {
	case ast.SYMBOL:
		if found, ok := source.Resolve(form.Symbol); ok {
			if found.Kind != value.SPECIAL && found.Kind != value.BUILTIN {
				destination.UnsafeRegister(form.Symbol, found)
			}
		}
	case ast.LIST:
		for _, child := range form.Children {
			captureEnvironment(child, source, destination)
		}
	}
}

// define implements (def! symbol form): evaluates form in env and binds it
// under symbol, shadow-checked, returning NIL.
func (vm *VM) define(nodes []*ast.Node, envAny value.Env, tr *value.Trampoline) (*value.Value, error) {
	env := envAny.(*environment.Environment)
	head := nodes[0]

	if len(nodes) != 3 {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(head.Position),
			"def! requires a symbol and a form. %s", exampleDefine)
	}

	key := nodes[1]
	if key.Kind != ast.SYMBOL {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(head.Position),
			"def! requires a symbol and a form. %s", exampleDefine)
	}

	if strings.Contains(key.Symbol, environment.NamespaceDelimiter) {
		return nil, util.NewRuntimeError(util.ErrSyntaxUnexpectedToken, toUtilPos(head.Position),
			"Unexpected namespace delimiter %q in custom symbol %q", environment.NamespaceDelimiter, key.Symbol)
	}

	reduced, err := vm.Evaluate(nodes[2], env)
	if err != nil {
		return nil, err
	}

	if err := env.Register(key.Symbol, reduced, nodes[2].Position); err != nil {
		return nil, err
	}

	return value.Nil(head.Position), nil
}

// function implements (fn (params...) form): builds a CLOSURE value whose
// form is an owned copy of the third node and whose captured_env is a
// fresh environment pre-populated by a capture walk over that form.
func (vm *VM) function(nodes []*ast.Node, envAny value.Env, tr *value.Trampoline) (*value.Value, error) {
	env := envAny.(*environment.Environment)
	head := nodes[0]

	if len(nodes) != 3 {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(head.Position),
			"fn requires a binding list and a form. %s", exampleFunction)
	}

	params := nodes[1]
	if params.Kind != ast.LIST {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(params.Position),
			"fn requires a binding list and a form. %s", exampleFunction)
	}

	form := nodes[2]

	names := make([]string, 0, len(params.Children))
	for _, p := range params.Children {
		if p.Kind != ast.SYMBOL {
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(p.Position),
				"fn requires a binding list of symbols. %s", exampleFunction)
		}
		if env.IsVisible(p.Symbol) {
			return nil, util.NewRuntimeError(util.ErrReferenceSymbolShadowed, toUtilPos(p.Position),
				"Identifier '%s' shadows a value", p.Symbol)
		}
		names = append(names, p.Symbol)
	}

	captured := env.NewChild()
	captureEnvironment(form, env, captured)

	closureValue := &value.Value{
		Kind:     value.CLOSURE,
		Position: head.Position,
		Closure: value.Closure{
			Form:        form.Copy(),
			Parameters:  names,
			CapturedEnv: captured,
		},
	}
	return closureValue, nil
}

// let implements (let ((symbol form)...) body): bindings are evaluated and
// registered sequentially in a fresh child scope, so later bindings see
// earlier ones, then body is evaluated in that scope. The result is
// deep-copied so it can escape the local scope it was produced in.
func (vm *VM) let(nodes []*ast.Node, envAny value.Env, tr *value.Trampoline) (*value.Value, error) {
	env := envAny.(*environment.Environment)
	head := nodes[0]

	if len(nodes) != 3 {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(head.Position),
			"let requires a list of symbol-form assignments. %s", exampleLet)
	}

	couples := nodes[1]
	if couples.Kind != ast.LIST {
		return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(couples.Position),
			"let requires a list of symbol-form assignments. %s", exampleLet)
	}

	local := env.NewChild()

	for _, couple := range couples.Children {
		if couple.Kind != ast.LIST || len(couple.Children) != 2 {
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(couple.Position),
				"let requires a list of symbol-form assignments. %s", exampleLet)
		}

		symbol := couple.Children[0]
		if symbol.Kind != ast.SYMBOL {
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(symbol.Position),
				"let requires a list of symbol-form assignments. %s", exampleLet)
		}
		if strings.Contains(symbol.Symbol, environment.NamespaceDelimiter) {
			return nil, util.NewRuntimeError(util.ErrSyntaxUnexpectedToken, toUtilPos(head.Position),
				"Unexpected namespace delimiter %q in custom symbol %q", environment.NamespaceDelimiter, symbol.Symbol)
		}

		body := couple.Children[1]
		evaluated, err := vm.Evaluate(body, local)
		if err != nil {
			return nil, err
		}
		if err := local.Register(symbol.Symbol, evaluated, evaluated.Position); err != nil {
			return nil, err
		}
	}

	result, err := vm.Evaluate(nodes[2], local)
	if err != nil {
		return nil, err
	}
	return result.DeepCopy(), nil
}

// cond implements (cond (pred then)... fallback): the middle clauses are
// tried in order; the first whose predicate evaluates to a true BOOLEAN
// wins. If none match, fallback is evaluated.
func (vm *VM) cond(nodes []*ast.Node, envAny value.Env, tr *value.Trampoline) (*value.Value, error) {
	env := envAny.(*environment.Environment)

	for i := 1; i < len(nodes)-1; i++ {
		clause := nodes[i]
		if clause.Kind != ast.LIST || len(clause.Children) != 2 {
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(clause.Position),
				"cond requires a list of condition-form assignments. %s", exampleCond)
		}

		predicate := clause.Children[0]
		predicateValue, err := vm.Evaluate(predicate, env)
		if err != nil {
			return nil, err
		}
		if predicateValue.Kind != value.BOOLEAN {
			return nil, util.NewRuntimeError(util.ErrRuntime, toUtilPos(clause.Position),
				"Conditions should resolve to a boolean, got %s. %s", predicateValue.Kind, exampleCond)
		}

		if predicateValue.Boolean {
			return vm.Evaluate(clause.Children[1], env)
		}
	}

	fallback := nodes[len(nodes)-1]
	return vm.Evaluate(fallback, env)
}
