package simplify

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

// mergeNary is the shared n-ary interleaving routine (§4.5, §9 Design
// Notes) behind Sum, Product, And, Or, Union, and Intersection. It
// interleaves two already-canonical operand lists by repeatedly invoking
// pairwise on the current heads and advancing whichever side was kept,
// giving associative flattening, canonical sorting, and like-term
// combination in a single O(n*m) pass.
//
// pairwise must already handle both plain two-operand combination and
// recursive-list combination (its own list argument may itself contain a
// matching n-ary node to flatten); it returns 0, 1, or 2 operands.
func mergeNary(p, q []expr.Expr, pairwise func(a, b expr.Expr) []expr.Expr) []expr.Expr {
	if len(q) == 0 {
		return append([]expr.Expr{}, p...)
	}
	if len(p) == 0 {
		return append([]expr.Expr{}, q...)
	}
	p1, q1 := p[0], q[0]
	h := pairwise(p1, q1)
	switch len(h) {
	case 0:
		return mergeNary(p[1:], q[1:], pairwise)
	case 1:
		return append([]expr.Expr{h[0]}, mergeNary(p[1:], q[1:], pairwise)...)
	default: // 2
		if expr.Equal(h[0], p1) && expr.Equal(h[1], q1) {
			return append([]expr.Expr{p1}, mergeNary(p[1:], q, pairwise)...)
		}
		return append([]expr.Expr{q1}, mergeNary(p, q[1:], pairwise)...)
	}
}
