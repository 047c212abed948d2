package simplify

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/order"
)

// simplifyNot implements boolean negation with double-negation
// elimination and Undefined propagation (§4.5).
func simplifyNot(u expr.Expr) expr.Expr {
	a := u.Operands[0]
	switch {
	case a.IsUndefined():
		return expr.Undefined()
	case a.Kind == expr.KindBoolean:
		return expr.Bool(!a.Bool)
	case a.Kind == expr.KindNot:
		return a.Operands[0]
	default:
		return u
	}
}

// simplifyOr implements §4.5's Or rules: Undefined wins, any True wins,
// single operand passes through, otherwise booleans combine pairwise,
// False operands drop, and the rest sort/flatten like Sum/Product.
func simplifyOr(u expr.Expr) expr.Expr {
	for _, o := range u.Operands {
		if o.IsUndefined() {
			return expr.Undefined()
		}
	}
	for _, o := range u.Operands {
		if o.Kind == expr.KindBoolean && o.Bool {
			return expr.Bool(true)
		}
	}
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	v := simplifyOrRec(u.Operands)
	switch len(v) {
	case 0:
		return expr.Bool(false)
	case 1:
		return v[0]
	default:
		return expr.Or(v...)
	}
}

func simplifyOrRec(l []expr.Expr) []expr.Expr {
	if len(l) == 2 && l[0].Kind != expr.KindOr && l[1].Kind != expr.KindOr {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindBoolean && !u1.Bool:
			return []expr.Expr{u2}
		case u2.Kind == expr.KindBoolean && !u2.Bool:
			return []expr.Expr{u1}
		case expr.Equal(u1, u2):
			return []expr.Expr{u1}
		case order.Less(u2, u1):
			return []expr.Expr{u2, u1}
		default:
			return []expr.Expr{u1, u2}
		}
	}
	if len(l) == 2 && (l[0].Kind == expr.KindOr || l[1].Kind == expr.KindOr) {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindOr && u2.Kind == expr.KindOr:
			return mergeNary(u1.Operands, u2.Operands, pairwiseOr)
		case u1.Kind == expr.KindOr:
			return mergeNary(u1.Operands, []expr.Expr{u2}, pairwiseOr)
		default:
			return mergeNary([]expr.Expr{u1}, u2.Operands, pairwiseOr)
		}
	}
	w := simplifyOrRec(l[1:])
	if l[0].Kind == expr.KindOr {
		return mergeNary(l[0].Operands, w, pairwiseOr)
	}
	return mergeNary([]expr.Expr{l[0]}, w, pairwiseOr)
}

func pairwiseOr(a, b expr.Expr) []expr.Expr { return simplifyOrRec([]expr.Expr{a, b}) }

// simplifyAnd is simplifyOr's dual with False/True swapped (§4.5).
func simplifyAnd(u expr.Expr) expr.Expr {
	for _, o := range u.Operands {
		if o.IsUndefined() {
			return expr.Undefined()
		}
	}
	for _, o := range u.Operands {
		if o.Kind == expr.KindBoolean && !o.Bool {
			return expr.Bool(false)
		}
	}
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	v := simplifyAndRec(u.Operands)
	switch len(v) {
	case 0:
		return expr.Bool(true)
	case 1:
		return v[0]
	default:
		return expr.And(v...)
	}
}

func simplifyAndRec(l []expr.Expr) []expr.Expr {
	if len(l) == 2 && l[0].Kind != expr.KindAnd && l[1].Kind != expr.KindAnd {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindBoolean && u1.Bool:
			return []expr.Expr{u2}
		case u2.Kind == expr.KindBoolean && u2.Bool:
			return []expr.Expr{u1}
		case expr.Equal(u1, u2):
			return []expr.Expr{u1}
		case order.Less(u2, u1):
			return []expr.Expr{u2, u1}
		default:
			return []expr.Expr{u1, u2}
		}
	}
	if len(l) == 2 && (l[0].Kind == expr.KindAnd || l[1].Kind == expr.KindAnd) {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindAnd && u2.Kind == expr.KindAnd:
			return mergeNary(u1.Operands, u2.Operands, pairwiseAnd)
		case u1.Kind == expr.KindAnd:
			return mergeNary(u1.Operands, []expr.Expr{u2}, pairwiseAnd)
		default:
			return mergeNary([]expr.Expr{u1}, u2.Operands, pairwiseAnd)
		}
	}
	w := simplifyAndRec(l[1:])
	if l[0].Kind == expr.KindAnd {
		return mergeNary(l[0].Operands, w, pairwiseAnd)
	}
	return mergeNary([]expr.Expr{l[0]}, w, pairwiseAnd)
}

func pairwiseAnd(a, b expr.Expr) []expr.Expr { return simplifyAndRec([]expr.Expr{a, b}) }
