package runtime

import (
	"fmt"
	"strconv"

	"eddy/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindStr
	KindFun
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindStr:
		return "string"
	case KindFun:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all evaluation results. Values are
// produced only by evaluation and never mutated after construction.
type Value interface {
	Kind() Kind
	String() string
}

// NumberValue is a real-valued scalar.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

func (v NumberValue) String() string {
	return strconv.FormatFloat(v.Val, 'g', -1, 64)
}

// IsTrue applies the numeric truth convention: zero is false, everything
// else is true.
func (v NumberValue) IsTrue() bool { return v.Val != 0 }

// StrValue is a text scalar.
type StrValue struct {
	Val string
}

func (v StrValue) Kind() Kind { return KindStr }

func (v StrValue) String() string { return strconv.Quote(v.Val) }

// FunValue wraps an AST node with callable semantics, making operators and
// user-defined callables first-class results. The referenced node is shared,
// never owned; primitive singletons in particular are wrapped by many
// FunValues at once.
type FunValue struct {
	Node ast.Node
}

func (v FunValue) Kind() Kind { return KindFun }

func (v FunValue) String() string { return v.Node.Str() }
