package simplify

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

// simplifyDifference implements u - v -> u + (-1)*v (§4.5), with the fast
// path 0 - v -> (-1)*v applied first (see DESIGN.md's open-question note:
// both paths yield the same ASF, the fast path only changes intermediate
// tree size).
func simplifyDifference(u expr.Expr) expr.Expr {
	a, b := u.Operands[0], u.Operands[1]
	if a.IsZero() {
		return Simplify(expr.Product(expr.Int(-1), b))
	}
	return Simplify(expr.Sum(a, expr.Product(expr.Int(-1), b)))
}

// simplifyQuotient implements n/d -> n * d^(-1) (§4.5).
func simplifyQuotient(u expr.Expr) expr.Expr {
	n, d := u.Operands[0], u.Operands[1]
	return Simplify(expr.Product(n, expr.Power(d, expr.Int(-1))))
}
