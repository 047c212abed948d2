package simplify

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/numeric"
)

// simplifyPower implements simplify_power(v^w) (§4.5).
func simplifyPower(u expr.Expr) expr.Expr {
	v, w := u.Operands[0], u.Operands[1]
	switch {
	case v.IsUndefined() || w.IsUndefined():
		return expr.Undefined()
	case v.IsZero():
		if w.IsPositiveNum() {
			return expr.Int(0)
		}
		return expr.Undefined()
	case v.IsOne():
		return expr.Int(1)
	case w.Kind == expr.KindInteger:
		return simplifyIntegerPower(v, w.Int)
	default:
		return u
	}
}

// simplifyIntegerPower implements simplify_integer_power(v, n) (§4.5).
func simplifyIntegerPower(v expr.Expr, n int64) expr.Expr {
	switch {
	case v.Kind == expr.KindInteger || v.Kind == expr.KindFraction:
		return numeric.SimplifyRNE(expr.Power(v, expr.Int(n)))
	case n == 0:
		return expr.Int(1)
	case n == 1:
		return v
	case v.Kind == expr.KindPower:
		r, s := v.Operands[0], v.Operands[1]
		p := Simplify(expr.Product(s, expr.Int(n)))
		if p.Kind == expr.KindInteger {
			return simplifyIntegerPower(r, p.Int)
		}
		return expr.Power(r, p)
	case v.Kind == expr.KindProduct:
		r := v.Map(func(e expr.Expr) expr.Expr { return simplifyIntegerPower(e, n) })
		return simplifyProduct(r)
	default:
		return expr.Power(v, expr.Int(n))
	}
}
