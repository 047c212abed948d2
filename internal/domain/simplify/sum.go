package simplify

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/numeric"
	"github.com/ZanzyTHEbar/algomy/internal/domain/order"
)

// simplifySum is the entry point for Sum nodes (§4.5): Undefined operand
// propagates, a single operand passes through, otherwise the n-ary
// recursive reducer runs and its result is wrapped back into 0/1/n-ary
// shape.
func simplifySum(u expr.Expr) expr.Expr {
	for _, o := range u.Operands {
		if o.IsUndefined() {
			return expr.Undefined()
		}
	}
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	v := simplifySumRec(u.Operands)
	switch len(v) {
	case 0:
		return expr.Int(0)
	case 1:
		return v[0]
	default:
		return expr.Sum(v...)
	}
}

func simplifySumRec(l []expr.Expr) []expr.Expr {
	if len(l) == 2 && l[0].Kind != expr.KindSum && l[1].Kind != expr.KindSum {
		u1, u2 := l[0], l[1]
		switch {
		case u1.IsNumeric() && u2.IsNumeric():
			p := numeric.SimplifyGRNE(expr.Sum(u1, u2))
			if p.Kind == expr.KindInteger && p.Int == 0 {
				return nil
			}
			return []expr.Expr{p}
		case u1.IsZero():
			return []expr.Expr{u2}
		case u2.IsZero():
			return []expr.Expr{u1}
		default:
			r1, r2 := expr.ProductRest(u1), expr.ProductRest(u2)
			if expr.Equal(r1, r2) {
				s := Simplify(expr.Sum(expr.ProductCoeff(u1), expr.ProductCoeff(u2)))
				p := Simplify(expr.Product(s, r1))
				if p.Kind == expr.KindInteger && p.Int == 0 {
					return nil
				}
				return []expr.Expr{p}
			}
			if order.Less(u2, u1) {
				return []expr.Expr{u2, u1}
			}
			return []expr.Expr{u1, u2}
		}
	}

	if len(l) == 2 && (l[0].Kind == expr.KindSum || l[1].Kind == expr.KindSum) {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindSum && u2.Kind == expr.KindSum:
			return mergeNary(u1.Operands, u2.Operands, pairwiseSum)
		case u1.Kind == expr.KindSum:
			return mergeNary(u1.Operands, []expr.Expr{u2}, pairwiseSum)
		default:
			return mergeNary([]expr.Expr{u1}, u2.Operands, pairwiseSum)
		}
	}

	// len(l) > 2
	w := simplifySumRec(l[1:])
	if l[0].Kind == expr.KindSum {
		return mergeNary(l[0].Operands, w, pairwiseSum)
	}
	return mergeNary([]expr.Expr{l[0]}, w, pairwiseSum)
}

func pairwiseSum(a, b expr.Expr) []expr.Expr {
	return simplifySumRec([]expr.Expr{a, b})
}
