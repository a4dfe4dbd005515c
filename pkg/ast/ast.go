package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeType identifies the variant of an expression node.
type NodeType string

const (
	NodeNumberLiteral NodeType = "NumberLiteral"
	NodeStrLiteral    NodeType = "StrLiteral"
	NodeIdentifier    NodeType = "Identifier"
	NodePrimitive     NodeType = "Primitive"
	NodeCall          NodeType = "Call"
)

// Node is one step of a parsed expression tree. Nodes are built once by the
// parser, are immutable afterwards, and carry a canonical printable symbol via
// Str. Evaluation lives in pkg/interpreter; nodes themselves are inert data,
// which is what makes "never evaluating a subtree" ordinary control flow
// rather than thunk machinery.
type Node interface {
	NodeType() NodeType
	// Str returns the short printable form of the node. For primitive
	// operators this is also the registry key.
	Str() string
}

// NumberLiteral holds a numeric constant parsed at construction time.
type NumberLiteral struct {
	Val float64
}

// NewNumberLiteral consumes exactly one token and parses it into the
// constant the node will denote for its whole lifetime.
func NewNumberLiteral(token string) (*NumberLiteral, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("ast: invalid number literal %q", token)
	}
	return &NumberLiteral{Val: v}, nil
}

func (n *NumberLiteral) NodeType() NodeType { return NodeNumberLiteral }

func (n *NumberLiteral) Str() string {
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// StrLiteral holds a text constant.
type StrLiteral struct {
	Val string
}

// NewStrLiteral wraps the already-unquoted token content.
func NewStrLiteral(token string) *StrLiteral {
	return &StrLiteral{Val: token}
}

func (n *StrLiteral) NodeType() NodeType { return NodeStrLiteral }

func (n *StrLiteral) Str() string { return strconv.Quote(n.Val) }

// Identifier names a variable resolved through the environment at
// evaluation time.
type Identifier struct {
	Name string
}

func NewIdentifier(token string) *Identifier { return &Identifier{Name: token} }

func (n *Identifier) NodeType() NodeType { return NodeIdentifier }

func (n *Identifier) Str() string { return n.Name }

// Call applies a callee expression to argument subtrees. The arguments are
// handed to the callee unevaluated; the callee decides which of them run and
// in what order.
type Call struct {
	Target Node
	Args   []Node
}

func NewCall(target Node, args []Node) *Call {
	return &Call{Target: target, Args: args}
}

func (n *Call) NodeType() NodeType { return NodeCall }

func (n *Call) Str() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.Target.Str())
	for _, a := range n.Args {
		b.WriteByte(' ')
		b.WriteString(a.Str())
	}
	b.WriteByte(')')
	return b.String()
}
