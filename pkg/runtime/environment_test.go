package runtime

import (
	"errors"
	"testing"
)

func TestLookupWalksScopeChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue{Val: 3})
	inner := outer.Extend()

	val, err := inner.Lookup("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	num, ok := val.(NumberValue)
	if !ok || num.Val != 3 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestLookupInnerBindingShadowsOuter(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue{Val: 1})
	inner := outer.Extend()
	inner.Define("x", NumberValue{Val: 2})

	val, err := inner.Lookup("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 2 {
		t.Fatalf("expected inner binding 2, got %v", num.Val)
	}

	// The outer scope stays untouched.
	val, err = outer.Lookup("x")
	if err != nil {
		t.Fatalf("outer lookup failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 1 {
		t.Fatalf("expected outer binding 1, got %v", num.Val)
	}
}

func TestLookupUnboundFails(t *testing.T) {
	env := NewEnvironment(nil).Extend().Extend()

	val, err := env.Lookup("missing")
	if err == nil {
		t.Fatalf("expected unresolved identifier, got %#v", val)
	}
	var unresolved *UnresolvedIdentifierError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedIdentifierError, got %v", err)
	}
	if unresolved.Name != "missing" {
		t.Fatalf("unexpected name %q", unresolved.Name)
	}
	if val != nil {
		t.Fatalf("lookup must never return a default value, got %#v", val)
	}
}

func TestHasAndHasInCurrentScope(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue{Val: 1})
	inner := outer.Extend()

	if !inner.Has("x") {
		t.Fatalf("expected x visible from inner scope")
	}
	if inner.HasInCurrentScope("x") {
		t.Fatalf("x is bound in the outer scope only")
	}
	if inner.Parent() != outer {
		t.Fatalf("unexpected parent")
	}
}

func TestKeysSorted(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("b", NumberValue{Val: 2})
	env.Define("a", NumberValue{Val: 1})
	env.Define("c", NumberValue{Val: 3})

	keys := env.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("unexpected keys %v", keys)
		}
	}
}
