package interpreter_test

import (
	"errors"
	"testing"

	"eddy/interpreter-go/pkg/interpreter"
	"eddy/interpreter-go/pkg/parser"
	"eddy/interpreter-go/pkg/runtime"
)

func eval(t *testing.T, src string, env *runtime.Environment) (runtime.Value, error) {
	t.Helper()
	node, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse %q failed: %v", src, err)
	}
	return interpreter.Evaluate(node, env)
}

func TestScenarioAddition(t *testing.T) {
	val, err := eval(t, "(+ 3 4)", runtime.NewEnvironment(nil))
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 7 {
		t.Fatalf("expected 7, got %v", n.Val)
	}
}

func TestScenarioShortCircuitAvoidsDivision(t *testing.T) {
	// The division subtree never runs: the result is plain false, with no
	// error and no Inf from the unreachable (/ 1 0).
	val, err := eval(t, "(&& 0 (/ 1 0))", runtime.NewEnvironment(nil))
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 0 {
		t.Fatalf("expected 0, got %v", n.Val)
	}
}

func TestScenarioUnboundIdentifier(t *testing.T) {
	_, err := eval(t, "x", runtime.NewEnvironment(nil))
	var unresolved *runtime.UnresolvedIdentifierError
	if !errors.As(err, &unresolved) || unresolved.Name != "x" {
		t.Fatalf("expected UnresolvedIdentifierError for x, got %v", err)
	}
}

func TestScenarioNestedExpression(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	env.Define("x", runtime.NumberValue{Val: 10})

	val, err := eval(t, "(< (* x 2) (+ x 11))", env)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 1 {
		t.Fatalf("expected 1, got %v", n.Val)
	}
}

func TestScenarioFirstClassOperator(t *testing.T) {
	// A bare operator evaluates to a function value that can round-trip
	// through an environment and be called later.
	env := runtime.NewEnvironment(nil)
	val, err := eval(t, "+", env)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	fun, ok := val.(runtime.FunValue)
	if !ok {
		t.Fatalf("expected function value, got %#v", val)
	}
	env.Define("add", fun)

	val, err = eval(t, "(add 2 5)", env)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 7 {
		t.Fatalf("expected 7, got %v", n.Val)
	}
}

func TestScenarioStringComparison(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	env.Define("name", runtime.StrValue{Val: "fred"})

	val, err := eval(t, `(== name "fred")`, env)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 1 {
		t.Fatalf("expected 1, got %v", n.Val)
	}
}
