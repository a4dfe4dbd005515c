package interpreter

import (
	"testing"

	"eddy/interpreter-go/pkg/ast"
	"eddy/interpreter-go/pkg/runtime"
)

func TestRegistryRoundTrip(t *testing.T) {
	for _, symbol := range PrimSymbols() {
		prim, ok := LookupPrim(symbol)
		if !ok {
			t.Fatalf("symbol %q listed but not resolvable", symbol)
		}
		if prim.Str() != symbol {
			t.Fatalf("symbol %q resolves to node with symbol %q", symbol, prim.Str())
		}
	}
}

func TestRegistryCoversDeclaredOperators(t *testing.T) {
	want := []string{
		"!=", "&", "&&", "*", "+", "-", "/",
		"<", "<=", "==", ">", ">=", "|", "||",
	}
	got := PrimSymbols()
	if len(got) != len(want) {
		t.Fatalf("expected %d operators, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected symbols %v, got %v", want, got)
		}
	}
}

func TestRegistryLookupIsCaseExact(t *testing.T) {
	if _, ok := LookupPrim("AND"); ok {
		t.Fatalf("registry keys are the canonical symbols only")
	}
}

func TestRegistryPlusAppliesArguments(t *testing.T) {
	plus, ok := LookupPrim("+")
	if !ok {
		t.Fatalf("'+' not registered")
	}
	val, err := plus.Apply(runtime.NewEnvironment(nil), []ast.Node{
		&ast.NumberLiteral{Val: 2},
		&ast.NumberLiteral{Val: 5},
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if n := val.(runtime.NumberValue); n.Val != 7 {
		t.Fatalf("expected 7, got %v", n.Val)
	}
}
