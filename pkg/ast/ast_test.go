package ast

import "testing"

func TestNumberLiteralParsesTokenOnce(t *testing.T) {
	num, err := NewNumberLiteral("3.5")
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if num.Val != 3.5 {
		t.Fatalf("expected 3.5, got %v", num.Val)
	}
	if num.Str() != "3.5" {
		t.Fatalf("unexpected symbol %q", num.Str())
	}
}

func TestNumberLiteralRejectsBadToken(t *testing.T) {
	if _, err := NewNumberLiteral("banana"); err == nil {
		t.Fatalf("expected construction error")
	}
}

func TestStrLiteralSymbolIsQuoted(t *testing.T) {
	str := NewStrLiteral("fred")
	if str.Val != "fred" {
		t.Fatalf("unexpected constant %q", str.Val)
	}
	if str.Str() != `"fred"` {
		t.Fatalf("unexpected symbol %q", str.Str())
	}
}

func TestCallRendersAsSExpression(t *testing.T) {
	inner := NewCall(NewIdentifier("f"), []Node{NewIdentifier("x")})
	num, _ := NewNumberLiteral("2")
	call := NewCall(NewIdentifier("g"), []Node{inner, num})
	if got := call.Str(); got != "(g (f x) 2)" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestNodeTypes(t *testing.T) {
	num, _ := NewNumberLiteral("1")
	cases := []struct {
		node Node
		want NodeType
	}{
		{num, NodeNumberLiteral},
		{NewStrLiteral(""), NodeStrLiteral},
		{NewIdentifier("x"), NodeIdentifier},
		{NewCall(NewIdentifier("f"), nil), NodeCall},
	}
	for _, tc := range cases {
		if tc.node.NodeType() != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, tc.node.NodeType())
		}
	}
}
