package simplify

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/function"
	"github.com/ZanzyTHEbar/algomy/internal/domain/numeric"
)

// Simplify is the Automatic Simplifier's entry point (§4.5): atoms other
// than raw fractions/Gaussians pass through unchanged, fractions and
// Gaussians reduce to standard form, and every other kind first
// simplifies its operands, then dispatches to the rule for its own kind.
// Func nodes are handed to the function package's dispatch table, passing
// Simplify itself back in as the callback that package needs to recurse
// into the simplifier without importing it.
func Simplify(x expr.Expr) expr.Expr {
	switch x.Kind {
	case expr.KindUndefined, expr.KindInteger, expr.KindSymbol, expr.KindBoolean:
		return x
	case expr.KindFraction:
		return numeric.SimplifyRationalNumber(x)
	case expr.KindGaussian:
		return numeric.SimplifyGaussianNumber(x)
	}

	v := x.Map(Simplify)
	for _, o := range v.Operands {
		if o.IsUndefined() {
			return expr.Undefined()
		}
	}

	switch v.Kind {
	case expr.KindPower:
		return simplifyPower(v)
	case expr.KindProduct:
		return simplifyProduct(v)
	case expr.KindSum:
		return simplifySum(v)
	case expr.KindDifference:
		return simplifyDifference(v)
	case expr.KindQuotient:
		return simplifyQuotient(v)
	case expr.KindFactorial:
		return simplifyFactorial(v)
	case expr.KindNot:
		return simplifyNot(v)
	case expr.KindOr:
		return simplifyOr(v)
	case expr.KindAnd:
		return simplifyAnd(v)
	case expr.KindSet:
		return simplifySet(v)
	case expr.KindUnion:
		return simplifyUnion(v)
	case expr.KindIntersection:
		return simplifyIntersection(v)
	case expr.KindSetDifference:
		return simplifySetDifference(v)
	case expr.KindMember:
		return simplifyMember(v)
	case expr.KindFunc:
		return function.Dispatch(Simplify, v.Name, v.Operands)
	default:
		return v
	}
}
