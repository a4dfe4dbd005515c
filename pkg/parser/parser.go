// Package parser turns source text into expression trees. It is the
// construction-time collaborator of the evaluator: once a tree is built the
// parser is out of the picture entirely.
//
// The surface syntax is prefix call notation: (+ 3 4), (&& 0 (/ 1 0)),
// double-quoted strings, numbers, identifiers. Bare operator symbols resolve
// through the primitive registry ahead of identifier construction.
package parser

import (
	"eddy/interpreter-go/pkg/ast"
	"eddy/interpreter-go/pkg/interpreter"
)

// Parse reads exactly one expression and fails on trailing input.
func Parse(src string) (ast.Node, error) {
	sc := NewScanner(src)
	node, err := parseExpr(sc)
	if err != nil {
		return nil, err
	}
	if !sc.EOF() {
		return nil, sc.errorf(sc.Pos(), "unexpected input after expression")
	}
	return node, nil
}

// ParseProgram reads a whitespace-separated sequence of expressions.
func ParseProgram(src string) ([]ast.Node, error) {
	sc := NewScanner(src)
	var nodes []ast.Node
	for !sc.EOF() {
		node, err := parseExpr(sc)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func parseExpr(sc *Scanner) (ast.Node, error) {
	c, ok := sc.Peek()
	if !ok {
		return nil, sc.errorf(sc.Pos(), "unexpected end of input")
	}
	switch {
	case c == '(':
		return parseCall(sc)
	case c == ')':
		return nil, sc.errorf(sc.Pos(), "unexpected ')'")
	case c == '"':
		sc.Next()
		content, err := sc.Match('"')
		if err != nil {
			return nil, err
		}
		return ast.NewStrLiteral(content), nil
	default:
		return parseAtom(sc)
	}
}

func parseCall(sc *Scanner) (ast.Node, error) {
	open := sc.Pos()
	sc.Next() // '('
	target, err := parseExpr(sc)
	if err != nil {
		return nil, err
	}
	var args []ast.Node
	for {
		c, ok := sc.Peek()
		if !ok {
			return nil, sc.errorf(open, "unclosed '('")
		}
		if c == ')' {
			sc.Next()
			return ast.NewCall(target, args), nil
		}
		arg, err := parseExpr(sc)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func parseAtom(sc *Scanner) (ast.Node, error) {
	start := sc.Pos()
	tok, err := sc.Token()
	if err != nil {
		return nil, err
	}
	if startsNumber(tok) {
		num, err := ast.NewNumberLiteral(tok)
		if err != nil {
			return nil, sc.errorf(start, "invalid number %q", tok)
		}
		return num, nil
	}
	if prim, ok := interpreter.LookupPrim(tok); ok {
		return prim, nil
	}
	return ast.NewIdentifier(tok), nil
}

// startsNumber reports whether a token should be read as a number literal.
// A lone '-' or '+' is an operator symbol, not a sign.
func startsNumber(tok string) bool {
	c := tok[0]
	if c >= '0' && c <= '9' || c == '.' && len(tok) > 1 {
		return true
	}
	if (c == '-' || c == '+') && len(tok) > 1 {
		next := tok[1]
		return next >= '0' && next <= '9' || next == '.'
	}
	return false
}
