// Package interpreter evaluates eddy expression trees. It owns the two-phase
// evaluation contract (exec produces the value a node denotes, apply invokes
// a callable on unevaluated argument subtrees) and the process-wide registry
// of built-in operators. The split is what makes short-circuit logic and lazy
// branches ordinary control flow: an argument that must not run is simply a
// subtree that never gets exec'd.
package interpreter
