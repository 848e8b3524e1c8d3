package vm

import (
	"testing"

	"github.com/shikaan/lifp/ast"
	"github.com/shikaan/lifp/lexer"
	"github.com/shikaan/lifp/parser"
	"github.com/shikaan/lifp/util"
	"github.com/shikaan/lifp/value"
)

func eval(t *testing.T, machine *VM, source string) *value.Value {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", source, err)
	}
	node, err := parser.ParseStatement(tokens)
	if err != nil {
		t.Fatalf("ParseStatement(%q) returned error: %v", source, err)
	}
	result, err := machine.Evaluate(node, machine.Global())
	if err != nil {
		t.Fatalf("Evaluate(%q) returned error: %v", source, err)
	}
	return result
}

func evalErr(t *testing.T, machine *VM, source string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", source, err)
	}
	node, err := parser.ParseStatement(tokens)
	if err != nil {
		t.Fatalf("ParseStatement(%q) returned error: %v", source, err)
	}
	_, err = machine.Evaluate(node, machine.Global())
	if err == nil {
		t.Fatalf("Evaluate(%q) expected error, got none", source)
	}
	return err
}

func TestEvaluateAtoms(t *testing.T) {
	machine := New(Options{})

	if r := eval(t, machine, "42"); r.Kind != value.NUMBER || r.Number != 42 {
		t.Errorf("42 => %v", r)
	}
	if r := eval(t, machine, "\"hi\""); r.Kind != value.STRING || r.Str != "hi" {
		t.Errorf("\"hi\" => %v", r)
	}
	if r := eval(t, machine, "true"); r.Kind != value.BOOLEAN || !r.Boolean {
		t.Errorf("true => %v", r)
	}
	if r := eval(t, machine, "nil"); r.Kind != value.NIL {
		t.Errorf("nil => %v", r)
	}
}

func TestEvaluateSymbolNotFoundProducesRuntimeError(t *testing.T) {
	machine := New(Options{})
	evalErr(t, machine, "undefined-symbol")
}

func TestEvaluateBuiltinCall(t *testing.T) {
	machine := New(Options{})
	result := eval(t, machine, "(+ 1 2 3)")
	if result.Kind != value.NUMBER || result.Number != 6 {
		t.Errorf("(+ 1 2 3) => %v", result)
	}
}

func TestDefAndSymbolResolution(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! x 10)")
	result := eval(t, machine, "x")
	if result.Kind != value.NUMBER || result.Number != 10 {
		t.Errorf("x => %v, want 10", result)
	}
}

func TestDefRejectsRedefinition(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! x 1)")
	evalErr(t, machine, "(def! x 2)")
}

func TestFnAndClosureInvocation(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! add (fn (a b) (+ a b)))")
	result := eval(t, machine, "(add 3 4)")
	if result.Kind != value.NUMBER || result.Number != 7 {
		t.Errorf("(add 3 4) => %v, want 7", result)
	}
}

func TestLetSequentialVisibility(t *testing.T) {
	machine := New(Options{})
	result := eval(t, machine, "(let ((a 1) (b (+ a 1))) (+ a b))")
	if result.Kind != value.NUMBER || result.Number != 3 {
		t.Errorf("let result => %v, want 3", result)
	}
}

func TestCondFirstMatchingClauseWins(t *testing.T) {
	machine := New(Options{})
	result := eval(t, machine, "(cond (false 1) (true 2) 3)")
	if result.Kind != value.NUMBER || result.Number != 2 {
		t.Errorf("cond => %v, want 2", result)
	}
}

func TestCondFallsBackWhenNoClauseMatches(t *testing.T) {
	machine := New(Options{})
	result := eval(t, machine, "(cond (false 1) (false 2) 3)")
	if result.Kind != value.NUMBER || result.Number != 3 {
		t.Errorf("cond fallback => %v, want 3", result)
	}
}

func TestPlainDataListEvaluatesEachElement(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! x 5)")
	result := eval(t, machine, "(1 x 3)")
	if result.Kind != value.LIST || len(result.List) != 3 {
		t.Fatalf("(1 x 3) => %v", result)
	}
	if result.List[1].Number != 5 {
		t.Errorf("element 1 => %v, want 5", result.List[1])
	}
}

func TestCallStackOverflowSurfacesRuntimeError(t *testing.T) {
	machine := New(Options{MaxCallStackSize: 4})
	eval(t, machine, "(def! loop (fn (n) (loop n)))")
	evalErr(t, machine, "(loop 1)")
}

func TestFnParameterShadowingRaisesShadowedError(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! x 1)")

	err := evalErr(t, machine, "(fn (x) x)")
	re, ok := err.(*util.RuntimeError)
	if !ok {
		t.Fatalf("error type = %T, want *util.RuntimeError", err)
	}
	if re.Code != util.ErrReferenceSymbolShadowed {
		t.Errorf("Code = %v, want %v", re.Code, util.ErrReferenceSymbolShadowed)
	}
}

// TestTrampolineBounceAvoidsRecursion registers a synthetic special form
// directly into the VM's specials registry (reachable here because this
// file lives in package vm) that requests several trampoline bounces in a
// row before producing a final value, proving the Evaluate dispatch loop's
// tr.More branch actually rebinds (node, env) and continues rather than
// recursing. None of def!/fn/let/cond exercises this path themselves, so
// this is the only place the mechanism runs.
func TestTrampolineBounceAvoidsRecursion(t *testing.T) {
	machine := New(Options{})

	const wantBounces = 5
	bounces := 0
	synthetic := func(nodes []*ast.Node, env value.Env, tr *value.Trampoline) (*value.Value, error) {
		bounces++
		if bounces < wantBounces {
			tr.More = true
			tr.Node = &ast.Node{Kind: ast.LIST, Children: nodes, Position: nodes[0].Position}
			tr.Environment = env
			return nil, nil
		}
		return value.Num(float64(bounces), nodes[0].Position), nil
	}
	machine.specials.Set("bounce!", &value.Value{Kind: value.SPECIAL, Special: synthetic})

	result := eval(t, machine, "(bounce!)")
	if result.Kind != value.NUMBER || result.Number != wantBounces {
		t.Errorf("(bounce!) => %v, want %v", result, wantBounces)
	}
	if bounces != wantBounces {
		t.Errorf("bounces = %d, want %d", bounces, wantBounces)
	}
}

func TestClosureCapturesEnclosingBindings(t *testing.T) {
	machine := New(Options{})
	eval(t, machine, "(def! make-adder (fn (n) (fn (x) (+ x n))))")
	eval(t, machine, "(def! add5 (make-adder 5))")
	result := eval(t, machine, "(add5 10)")
	if result.Kind != value.NUMBER || result.Number != 15 {
		t.Errorf("(add5 10) => %v, want 15", result)
	}
}
