// Package expand implements algebraic expansion (C6): distributing
// products over sums and expanding integer powers of sums via binomial
// composition. It takes the Automatic Simplifier as a callback argument
// rather than importing the simplify package directly, which keeps
// simplify -> function -> expand acyclic (the simplify package is the one
// that ultimately supplies the callback when it dispatches a Func call).
package expand

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

// AlgebraicExpand implements algebraic_expand(u) (§4.6).
func AlgebraicExpand(simplify expr.SimplifyFunc, u expr.Expr) expr.Expr {
	switch u.Kind {
	case expr.KindSum:
		switch len(u.Operands) {
		case 0:
			return expr.Int(0)
		case 1:
			return AlgebraicExpand(simplify, u.Operands[0])
		default:
			head := AlgebraicExpand(simplify, u.Operands[0])
			tail := AlgebraicExpand(simplify, simplify(expr.Sum(u.Operands[1:]...)))
			return simplify(expr.Sum(head, tail))
		}
	case expr.KindProduct:
		switch len(u.Operands) {
		case 0:
			return expr.Int(1)
		case 1:
			return AlgebraicExpand(simplify, u.Operands[0])
		default:
			head := AlgebraicExpand(simplify, u.Operands[0])
			tail := AlgebraicExpand(simplify, simplify(expr.Product(u.Operands[1:]...)))
			return ExpandProduct(simplify, head, tail)
		}
	case expr.KindPower:
		b, e := expr.Base(u), expr.Exponent(u)
		if e.Kind == expr.KindInteger && e.Int >= 2 {
			return ExpandPower(simplify, AlgebraicExpand(simplify, b), e.Int)
		}
		return u
	default:
		return u
	}
}

// ExpandProduct implements expand_product(r, s) (§4.6): distribute over
// whichever side is a Sum, otherwise simplify the plain product.
func ExpandProduct(simplify expr.SimplifyFunc, r, s expr.Expr) expr.Expr {
	switch {
	case r.Kind == expr.KindSum:
		if len(r.Operands) >= 2 {
			head := ExpandProduct(simplify, r.Operands[0], s)
			tail := ExpandProduct(simplify, simplify(expr.Sum(r.Operands[1:]...)), s)
			return simplify(expr.Sum(head, tail))
		}
		return ExpandProduct(simplify, r.Operands[0], s)
	case s.Kind == expr.KindSum:
		return ExpandProduct(simplify, s, r)
	default:
		return simplify(expr.Product(r, s))
	}
}

// ExpandPower implements expand_power(u, n) (§4.6): binomial expansion of
// (f + r)^n, with each term distributed through ExpandProduct.
func ExpandPower(simplify expr.SimplifyFunc, u expr.Expr, n int64) expr.Expr {
	if u.Kind != expr.KindSum {
		return simplify(expr.Power(u, expr.Int(n)))
	}
	f := u.Operands[0]
	r := simplify(expr.Sum(u.Operands[1:]...))
	terms := make([]expr.Expr, 0, n+1)
	for k := int64(0); k <= n; k++ {
		c := simplify(expr.Quotient(
			expr.Factorial(expr.Int(n)),
			expr.Product(expr.Factorial(expr.Int(k)), expr.Factorial(expr.Int(n-k))),
		))
		term := ExpandProduct(
			simplify,
			simplify(expr.Product(c, expr.Power(f, expr.Int(n-k)))),
			ExpandPower(simplify, r, k),
		)
		terms = append(terms, term)
	}
	return simplify(expr.Sum(terms...))
}
