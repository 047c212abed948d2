// Package classify implements the Integer/RNE/GRNE recursive predicates
// (C10) used by the polynomial toolkit and function dispatch table to
// decide which arithmetic path an expression qualifies for.
package classify

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

func IsInteger(x expr.Expr) bool { return x.Kind == expr.KindInteger }

// IsRNE reports whether x is a rational number expression: an
// Integer/Fraction atom, or a unary Sum/Difference over an RNE, or a
// binary +-*/ of two RNEs, or a Power whose base is RNE and exponent is an
// Integer.
func IsRNE(x expr.Expr) bool {
	switch x.Kind {
	case expr.KindInteger, expr.KindFraction:
		return true
	}
	switch len(x.Operands) {
	case 1:
		switch x.Kind {
		case expr.KindSum, expr.KindDifference:
			return IsRNE(x.Operands[0])
		default:
			return false
		}
	case 2:
		switch x.Kind {
		case expr.KindSum, expr.KindDifference, expr.KindProduct, expr.KindQuotient:
			return IsRNE(x.Operands[0]) && IsRNE(x.Operands[1])
		case expr.KindPower:
			return IsRNE(x.Operands[0]) && IsInteger(x.Operands[1])
		default:
			return false
		}
	default:
		return false
	}
}

// IsGRNE is IsRNE generalized to also admit Gaussian atoms.
func IsGRNE(x expr.Expr) bool {
	switch x.Kind {
	case expr.KindInteger, expr.KindFraction, expr.KindGaussian:
		return true
	}
	switch len(x.Operands) {
	case 1:
		switch x.Kind {
		case expr.KindSum, expr.KindDifference:
			return IsGRNE(x.Operands[0])
		default:
			return false
		}
	case 2:
		switch x.Kind {
		case expr.KindSum, expr.KindDifference, expr.KindProduct, expr.KindQuotient:
			return IsGRNE(x.Operands[0]) && IsGRNE(x.Operands[1])
		case expr.KindPower:
			return IsGRNE(x.Operands[0]) && IsInteger(x.Operands[1])
		default:
			return false
		}
	default:
		return false
	}
}
