package simplify

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/numeric"
	"github.com/ZanzyTHEbar/algomy/internal/domain/order"
)

func simplifyProduct(u expr.Expr) expr.Expr {
	for _, o := range u.Operands {
		if o.IsUndefined() {
			return expr.Undefined()
		}
	}
	for _, o := range u.Operands {
		if o.IsZero() {
			return expr.Int(0)
		}
	}
	if len(u.Operands) == 1 {
		return u.Operands[0]
	}
	v := simplifyProductRec(u.Operands)
	switch len(v) {
	case 0:
		return expr.Int(1)
	case 1:
		return v[0]
	default:
		return expr.Product(v...)
	}
}

func simplifyProductRec(l []expr.Expr) []expr.Expr {
	if len(l) == 2 && l[0].Kind != expr.KindProduct && l[1].Kind != expr.KindProduct {
		u1, u2 := l[0], l[1]
		switch {
		case u1.IsNumeric() && u2.IsNumeric():
			p := numeric.SimplifyGRNE(expr.Product(u1, u2))
			if p.IsOne() {
				return nil
			}
			return []expr.Expr{p}
		case u1.IsOne():
			return []expr.Expr{u2}
		case u2.IsOne():
			return []expr.Expr{u1}
		default:
			b1, b2 := expr.Base(u1), expr.Base(u2)
			if expr.Equal(b1, b2) {
				s := Simplify(expr.Sum(expr.Exponent(u1), expr.Exponent(u2)))
				p := simplifyPower(expr.Power(b1, s))
				if p.IsOne() {
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

	if len(l) == 2 && (l[0].Kind == expr.KindProduct || l[1].Kind == expr.KindProduct) {
		u1, u2 := l[0], l[1]
		switch {
		case u1.Kind == expr.KindProduct && u2.Kind == expr.KindProduct:
			return mergeNary(u1.Operands, u2.Operands, pairwiseProduct)
		case u1.Kind == expr.KindProduct:
			return mergeNary(u1.Operands, []expr.Expr{u2}, pairwiseProduct)
		default:
			return mergeNary([]expr.Expr{u1}, u2.Operands, pairwiseProduct)
		}
	}

	// len(l) > 2
	w := simplifyProductRec(l[1:])
	if l[0].Kind == expr.KindProduct {
		return mergeNary(l[0].Operands, w, pairwiseProduct)
	}
	return mergeNary([]expr.Expr{l[0]}, w, pairwiseProduct)
}

func pairwiseProduct(a, b expr.Expr) []expr.Expr {
	return simplifyProductRec([]expr.Expr{a, b})
}
