package interpreter

import (
	"fmt"

	"eddy/interpreter-go/pkg/ast"
	"eddy/interpreter-go/pkg/runtime"
)

// Applier is the callable capability. Only nodes denoting callable forms
// carry it: primitive operators here, user-defined callables in the layers
// above. Apply receives the argument subtrees unevaluated, so the callee
// decides which of them run and in what order.
type Applier interface {
	ast.Node
	Apply(env *runtime.Environment, args []ast.Node) (runtime.Value, error)
}

// Execer lets node kinds outside this package's closed set define their own
// evaluation. The enclosing runtime uses it for user-defined callable forms;
// tests use it for instrumented nodes.
type Execer interface {
	ast.Node
	Exec(env *runtime.Environment) (runtime.Value, error)
}

// Evaluate walks an expression tree and produces the value the root denotes,
// or propagates a fatal error. It is stateless: the only state threaded
// through a pass is the borrowed environment. Recursion depth equals tree
// depth; no explicit bound is enforced, so bounding pathologically deep
// expressions is the caller's job.
func Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Val}, nil
	case *ast.StrLiteral:
		return runtime.StrValue{Val: n.Val}, nil
	case *ast.Identifier:
		return env.Lookup(n.Name)
	case *ast.Call:
		return evaluateCall(n, env)
	case Applier:
		// Executing a callable form returns the function itself; operators
		// are ordinary first-class values.
		return runtime.FunValue{Node: n}, nil
	case Execer:
		return n.Exec(env)
	default:
		return nil, fmt.Errorf("interpreter: unknown node kind %s", node.NodeType())
	}
}

// Apply invokes a node's callable semantics on unevaluated argument
// subtrees. Nodes without the capability fail with NotApplicableError: an
// incorrectly constructed tree, never a recoverable condition.
func Apply(node ast.Node, env *runtime.Environment, args []ast.Node) (runtime.Value, error) {
	if a, ok := node.(Applier); ok {
		return a.Apply(env, args)
	}
	return nil, &runtime.NotApplicableError{Symbol: node.Str()}
}

// SymbolOf returns the canonical short form of a node, used for diagnostics
// and as the registry key for primitives.
func SymbolOf(node ast.Node) string { return node.Str() }

func evaluateCall(call *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	target, err := Evaluate(call.Target, env)
	if err != nil {
		return nil, err
	}
	fun, ok := target.(runtime.FunValue)
	if !ok {
		return nil, &runtime.NotApplicableError{Symbol: call.Target.Str()}
	}
	return Apply(fun.Node, env, call.Args)
}
