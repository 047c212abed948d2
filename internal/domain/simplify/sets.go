package simplify

import (
	"sort"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/order"
)

// sortDedupSet sorts ascending by canonical order and removes adjacent
// duplicates, implementing §3 invariant 8 (Set operands sorted and
// deduplicated).
func sortDedupSet(ops []expr.Expr) []expr.Expr {
	sorted := append([]expr.Expr{}, ops...)
	sort.SliceStable(sorted, func(i, j int) bool { return order.Less(sorted[i], sorted[j]) })
	out := sorted[:0:0]
	for i, o := range sorted {
		if i > 0 && expr.Equal(o, sorted[i-1]) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// simplifySet implements the Set literal rule (§4.5).
func simplifySet(u expr.Expr) expr.Expr {
	return expr.Set(sortDedupSet(u.Operands)...)
}

// simplifyUnion handles the (Set, Set) concatenate-then-dedup fast path
// and otherwise sorts/flattens like Or (§4.5).
func simplifyUnion(u expr.Expr) expr.Expr {
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	if len(u.Operands) == 2 && u.Operands[0].Kind == expr.KindSet && u.Operands[1].Kind == expr.KindSet {
		combined := append(append([]expr.Expr{}, u.Operands[0].Operands...), u.Operands[1].Operands...)
		return expr.Set(sortDedupSet(combined)...)
	}
	v := sortDedupSet(flattenNary(u.Operands, expr.KindUnion))
	if len(v) == 1 {
		return v[0]
	}
	return expr.Union(v...)
}

// simplifyIntersection: any empty-set operand collapses the whole
// expression to the empty set; (Set, Set) computes the sorted
// intersection of operand lists; otherwise sorts/flattens (§4.5).
func simplifyIntersection(u expr.Expr) expr.Expr {
	for _, o := range u.Operands {
		if o.Kind == expr.KindSet && len(o.Operands) == 0 {
			return expr.Set()
		}
	}
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	if len(u.Operands) == 2 && u.Operands[0].Kind == expr.KindSet && u.Operands[1].Kind == expr.KindSet {
		return expr.Set(setIntersect(u.Operands[0].Operands, u.Operands[1].Operands)...)
	}
	v := sortDedupSet(flattenNary(u.Operands, expr.KindIntersection))
	if len(v) == 1 {
		return v[0]
	}
	return expr.Intersection(v...)
}

// simplifySetDifference computes A \ B when both operands are Set
// literals; otherwise returns the expression unchanged (§4.5).
func simplifySetDifference(u expr.Expr) expr.Expr {
	a, b := u.Operands[0], u.Operands[1]
	if a.Kind != expr.KindSet || b.Kind != expr.KindSet {
		return u
	}
	var out []expr.Expr
	for _, e := range a.Operands {
		if !memberOf(e, b.Operands) {
			out = append(out, e)
		}
	}
	return expr.Set(sortDedupSet(out)...)
}

// simplifyMember implements linear-search membership when the second
// operand is a Set literal; otherwise returns the expression unchanged
// (§4.5).
func simplifyMember(u expr.Expr) expr.Expr {
	element, set := u.Operands[0], u.Operands[1]
	if set.Kind != expr.KindSet {
		return u
	}
	return expr.Bool(memberOf(element, set.Operands))
}

func memberOf(e expr.Expr, ops []expr.Expr) bool {
	for _, o := range ops {
		if expr.Equal(e, o) {
			return true
		}
	}
	return false
}

func setIntersect(a, b []expr.Expr) []expr.Expr {
	var out []expr.Expr
	for _, e := range a {
		if memberOf(e, b) {
			out = append(out, e)
		}
	}
	return out
}

// flattenNary collects operands for Union/Intersection: any operand of
// the same kind is inlined, following the same flatten-then-sort idiom
// used for Sum/Product/And/Or (§9 Design Notes).
func flattenNary(ops []expr.Expr, kind expr.Kind) []expr.Expr {
	var out []expr.Expr
	for _, o := range ops {
		if o.Kind == kind {
			out = append(out, o.Operands...)
		} else {
			out = append(out, o)
		}
	}
	return out
}
