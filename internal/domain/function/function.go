// Package function implements the name+arity dispatch table (C8) that the
// Automatic Simplifier consults whenever it meets a KindFunc node it does
// not already special-case itself. Like expand and polynomial, it takes
// the simplifier as a callback argument instead of importing the simplify
// package, which is what lets simplify import function (for its own Func
// case) without completing an import cycle.
package function

import (
	"github.com/ZanzyTHEbar/algomy/internal/domain/classify"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expand"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/polynomial"
)

// Dispatch implements §4.8's name+arity table. An unrecognized name or
// arity passes through unevaluated, exactly as an unknown function symbol
// would in any other computer algebra kernel.
func Dispatch(simplify expr.SimplifyFunc, name string, args []expr.Expr) expr.Expr {
	switch {
	case name == "Numerator" && len(args) == 1:
		return simplify(expr.Numerator(args[0]))
	case name == "Denominator" && len(args) == 1:
		return simplify(expr.Denominator(args[0]))
	case name == "Re" && len(args) == 1:
		return simplify(expr.Re(args[0]))
	case name == "Im" && len(args) == 1:
		return simplify(expr.Im(args[0]))
	case name == "Expand" && len(args) == 1:
		return expand.AlgebraicExpand(simplify, args[0])
	case name == "Coefficient" && len(args) == 3:
		exp, ok := integerOperand(args[2])
		if !ok {
			return expr.FuncCall(name, args...)
		}
		return polynomial.CoefficientGPE(simplify, args[0], args[1], exp)
	case name == "LeadingCoefficient" && len(args) == 2:
		return polynomial.LeadingCoefficientGPE(simplify, args[0], args[1])
	case name == "Degree" && len(args) == 2:
		return expr.Int(polynomial.DegreeGPE(args[0], args[1]))
	case name == "PolynomialQuotient" && len(args) == 3:
		return polynomial.Quotient(simplify, args[0], args[1], args[2])
	case name == "PolynomialRemainder" && len(args) == 3:
		return polynomial.Remainder(simplify, args[0], args[1], args[2])
	case name == "PolynomialGCD" && len(args) == 3:
		return polynomial.GCD(simplify, args[0], args[1], args[2])
	case name == "PolynomialExpansion" && len(args) == 4:
		return polynomial.Expansion(simplify, args[0], args[1], args[2], args[3])
	case name == "Variables" && len(args) == 1:
		return expr.Set(polynomial.VariablesGPE(args[0])...)
	case name == "IsInteger" && len(args) == 1:
		return expr.Bool(classify.IsInteger(args[0]))
	case name == "IsRNE" && len(args) == 1:
		return expr.Bool(classify.IsRNE(args[0]))
	case name == "IsGRNE" && len(args) == 1:
		return expr.Bool(classify.IsGRNE(args[0]))
	case name == "FreeOf" && len(args) == 2:
		return expr.Bool(expr.FreeOf(args[0], args[1]))
	case name == "Substitute" && len(args) == 3:
		return simplify(Substitute(args[0], args[1], args[2]))
	default:
		return expr.FuncCall(name, args...)
	}
}

// Substitute implements the substitution operation of C9 (§4.9):
// structural replacement of every subtree equal to target with
// replacement, applied top-down: a node equal to target is replaced whole
// and its replacement is not searched again.
func Substitute(u, target, replacement expr.Expr) expr.Expr {
	if expr.Equal(u, target) {
		return replacement
	}
	return u.Map(func(o expr.Expr) expr.Expr { return Substitute(o, target, replacement) })
}

func integerOperand(x expr.Expr) (int64, bool) {
	if x.Kind == expr.KindInteger {
		return x.Int, true
	}
	return 0, false
}
