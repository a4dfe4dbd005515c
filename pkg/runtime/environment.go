package runtime

import (
	"sort"
	"sync"
)

// Environment provides lexical scoping for evaluation. Scopes form a chain,
// innermost first; lookup walks inner to outer and the first match wins.
// Evaluation only reads an environment; Define exists for the enclosing
// runtime that builds scopes before handing them to the evaluator. Distinct
// evaluations must use distinct environments.
type Environment struct {
	values map[string]Value
	parent *Environment
	mu     sync.RWMutex
}

// NewEnvironment creates a new scope, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when outermost).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or shadows a binding in the current scope.
func (e *Environment) Define(name string, value Value) {
	e.mu.Lock()
	e.values[name] = value
	e.mu.Unlock()
}

// Lookup resolves a name, searching outward through the scope chain. An
// unbound name fails with UnresolvedIdentifierError, propagated unchanged by
// every caller.
func (e *Environment) Lookup(name string) (Value, error) {
	e.mu.RLock()
	if v, ok := e.values[name]; ok {
		e.mu.RUnlock()
		return v, nil
	}
	parent := e.parent
	e.mu.RUnlock()
	if parent != nil {
		return parent.Lookup(name)
	}
	return nil, &UnresolvedIdentifierError{Name: name}
}

// Has reports whether the binding exists anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	e.mu.RLock()
	if _, ok := e.values[name]; ok {
		e.mu.RUnlock()
		return true
	}
	parent := e.parent
	e.mu.RUnlock()
	if parent != nil {
		return parent.Has(name)
	}
	return false
}

// HasInCurrentScope reports whether the binding exists in this scope alone.
func (e *Environment) HasInCurrentScope(name string) bool {
	e.mu.RLock()
	_, ok := e.values[name]
	e.mu.RUnlock()
	return ok
}

// Keys returns this scope's bindings in sorted order (useful for determinism
// in tests and diagnostics).
func (e *Environment) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Extend opens a new child scope under the receiver.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
