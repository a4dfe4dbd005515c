package runtime

import "fmt"

// UnresolvedIdentifierError reports a name unbound in every enclosing scope.
// It aborts the whole evaluation; lookup never substitutes a default value.
type UnresolvedIdentifierError struct {
	Name string
}

func (e *UnresolvedIdentifierError) Error() string {
	return fmt.Sprintf("unresolved identifier '%s'", e.Name)
}

// NotApplicableError reports an apply on a node with no callable semantics.
// This signals an incorrectly constructed tree (a parser or registry defect,
// not a user-data defect).
type NotApplicableError struct {
	Symbol string
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("'%s' is not callable", e.Symbol)
}

// TypeMismatchError reports an operand whose kind is incompatible with the
// operator consuming it.
type TypeMismatchError struct {
	Symbol string
	Want   Kind
	Got    Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("'%s' expects a %s operand, got %s", e.Symbol, e.Want, e.Got)
}
