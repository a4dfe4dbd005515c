package interpreter

import (
	"fmt"

	"eddy/interpreter-go/pkg/ast"
	"eddy/interpreter-go/pkg/runtime"
)

// eagerPrim is a primitive operator that evaluates every argument exactly
// once, strictly left to right, before combining the operand values.
type eagerPrim struct {
	symbol  string
	combine func(l, r runtime.Value) (runtime.Value, error)
}

func (p *eagerPrim) NodeType() ast.NodeType { return ast.NodePrimitive }

func (p *eagerPrim) Str() string { return p.symbol }

func (p *eagerPrim) Apply(env *runtime.Environment, args []ast.Node) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("'%s' expects 2 operands, got %d", p.symbol, len(args))
	}
	l, err := Evaluate(args[0], env)
	if err != nil {
		return nil, err
	}
	r, err := Evaluate(args[1], env)
	if err != nil {
		return nil, err
	}
	return p.combine(l, r)
}

// shortCircuitPrim is a logical operator that evaluates only its first
// argument when that result alone decides the outcome. The second subtree is
// never exec'd in that case, so none of its side effects or errors occur.
type shortCircuitPrim struct {
	symbol string
	stopOn bool
}

func (p *shortCircuitPrim) NodeType() ast.NodeType { return ast.NodePrimitive }

func (p *shortCircuitPrim) Str() string { return p.symbol }

func (p *shortCircuitPrim) Apply(env *runtime.Environment, args []ast.Node) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("'%s' expects 2 operands, got %d", p.symbol, len(args))
	}
	first, err := Evaluate(args[0], env)
	if err != nil {
		return nil, err
	}
	n, err := asNumber(p.symbol, first)
	if err != nil {
		return nil, err
	}
	if n.IsTrue() == p.stopOn {
		return first, nil
	}
	return Evaluate(args[1], env)
}

func asNumber(symbol string, v runtime.Value) (runtime.NumberValue, error) {
	n, ok := v.(runtime.NumberValue)
	if !ok {
		return runtime.NumberValue{}, &runtime.TypeMismatchError{
			Symbol: symbol,
			Want:   runtime.KindNumber,
			Got:    v.Kind(),
		}
	}
	return n, nil
}

func bool01(b bool) runtime.NumberValue {
	if b {
		return runtime.NumberValue{Val: 1}
	}
	return runtime.NumberValue{Val: 0}
}

// numericOp builds an eager primitive over two numeric operands.
func numericOp(symbol string, op func(l, r float64) float64) *eagerPrim {
	return &eagerPrim{
		symbol: symbol,
		combine: func(l, r runtime.Value) (runtime.Value, error) {
			ln, err := asNumber(symbol, l)
			if err != nil {
				return nil, err
			}
			rn, err := asNumber(symbol, r)
			if err != nil {
				return nil, err
			}
			return runtime.NumberValue{Val: op(ln.Val, rn.Val)}, nil
		},
	}
}

// relationalOp builds an eager numeric comparison returning 0 or 1.
func relationalOp(symbol string, cmp func(l, r float64) bool) *eagerPrim {
	return numericOp(symbol, func(l, r float64) float64 {
		return bool01(cmp(l, r)).Val
	})
}

// equalityOp compares two operands of the same kind: numbers numerically,
// strings lexically. Function operands and mixed kinds are a type mismatch.
func equalityOp(symbol string, negate bool) *eagerPrim {
	return &eagerPrim{
		symbol: symbol,
		combine: func(l, r runtime.Value) (runtime.Value, error) {
			var eq bool
			switch lv := l.(type) {
			case runtime.NumberValue:
				rv, err := asNumber(symbol, r)
				if err != nil {
					return nil, err
				}
				eq = lv.Val == rv.Val
			case runtime.StrValue:
				rv, ok := r.(runtime.StrValue)
				if !ok {
					return nil, &runtime.TypeMismatchError{Symbol: symbol, Want: runtime.KindStr, Got: r.Kind()}
				}
				eq = lv.Val == rv.Val
			default:
				return nil, &runtime.TypeMismatchError{Symbol: symbol, Want: runtime.KindNumber, Got: l.Kind()}
			}
			return bool01(eq != negate), nil
		},
	}
}
