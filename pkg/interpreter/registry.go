package interpreter

import (
	"fmt"
	"sort"
)

// prims maps each built-in operator's canonical symbol to its one singleton
// node. Populated exactly once during package init, before any evaluation
// can run, and read-only afterwards: unsynchronized concurrent reads by
// simultaneous evaluations are safe, and no re-initialization path exists.
var prims = make(map[string]Applier)

func register(p Applier) {
	if _, dup := prims[p.Str()]; dup {
		panic(fmt.Sprintf("interpreter: duplicate primitive '%s'", p.Str()))
	}
	prims[p.Str()] = p
}

func init() {
	// Math ops. '&' and '|' are the eager logical pair; zero is false.
	register(numericOp("&", func(l, r float64) float64 { return bool01(l != 0 && r != 0).Val }))
	register(numericOp("/", func(l, r float64) float64 { return l / r }))
	register(numericOp("*", func(l, r float64) float64 { return l * r }))
	register(numericOp("|", func(l, r float64) float64 { return bool01(l != 0 || r != 0).Val }))
	register(numericOp("+", func(l, r float64) float64 { return l + r }))
	register(numericOp("-", func(l, r float64) float64 { return l - r }))

	// Relational
	register(relationalOp(">=", func(l, r float64) bool { return l >= r }))
	register(relationalOp(">", func(l, r float64) bool { return l > r }))
	register(relationalOp("<=", func(l, r float64) bool { return l <= r }))
	register(relationalOp("<", func(l, r float64) bool { return l < r }))
	register(equalityOp("==", false))
	register(equalityOp("!=", true))

	// Logical, with short-circuit evaluation
	register(&shortCircuitPrim{symbol: "&&", stopOn: false})
	register(&shortCircuitPrim{symbol: "||", stopOn: true})
}

// LookupPrim resolves a bare operator symbol to its singleton node. This
// lookup is consulted ahead of identifier resolution, never through the
// environment.
func LookupPrim(symbol string) (Applier, bool) {
	p, ok := prims[symbol]
	return p, ok
}

// PrimSymbols returns every registered operator symbol in sorted order.
func PrimSymbols() []string {
	syms := make([]string, 0, len(prims))
	for s := range prims {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}
