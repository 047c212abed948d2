// Package numeric implements closed-form arithmetic over rationals and
// Gaussian rationals (C3), and the reduction of rational/Gaussian number
// expressions to canonical form (C4).
package numeric

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

// EvaluateSum computes v + w for v, w an Integer or Fraction, returning an
// unreduced Fraction node (§4.3).
func EvaluateSum(v, w expr.Expr) expr.Expr {
	vn, vd := expr.NumeratorRNE(v), expr.DenominatorRNE(v)
	wn, wd := expr.NumeratorRNE(w), expr.DenominatorRNE(w)
	return expr.Frac(vn*wd+wn*vd, vd*wd)
}

func EvaluateDifference(v, w expr.Expr) expr.Expr {
	vn, vd := expr.NumeratorRNE(v), expr.DenominatorRNE(v)
	wn, wd := expr.NumeratorRNE(w), expr.DenominatorRNE(w)
	return expr.Frac(vn*wd-wn*vd, vd*wd)
}

func EvaluateProduct(v, w expr.Expr) expr.Expr {
	vn, vd := expr.NumeratorRNE(v), expr.DenominatorRNE(v)
	wn, wd := expr.NumeratorRNE(w), expr.DenominatorRNE(w)
	return expr.Frac(vn*wn, vd*wd)
}

func EvaluateQuotient(v, w expr.Expr) expr.Expr {
	wn, wd := expr.NumeratorRNE(w), expr.DenominatorRNE(w)
	if wn == 0 {
		return expr.Undefined()
	}
	vn, vd := expr.NumeratorRNE(v), expr.DenominatorRNE(v)
	return expr.Frac(vn*wd, vd*wn)
}

// EvaluatePower computes v^n for v an Integer/Fraction and n any int64
// (§4.3): positive n by iterated multiplication, n=0 -> 1, n=-1 -> the
// reciprocal, n<-1 via the reciprocal's positive power; base-zero cases
// follow the 0^n rules.
func EvaluatePower(v expr.Expr, n int64) expr.Expr {
	if expr.NumeratorRNE(v) != 0 {
		switch {
		case n > 0:
			s := EvaluatePower(v, n-1)
			return EvaluateProduct(s, v)
		case n == 0:
			return expr.Int(1)
		case n == -1:
			return expr.Frac(expr.DenominatorRNE(v), expr.NumeratorRNE(v))
		default: // n < -1
			s := expr.Frac(expr.DenominatorRNE(v), expr.NumeratorRNE(v))
			return EvaluatePower(s, -n)
		}
	}
	if n >= 1 {
		return expr.Int(0)
	}
	return expr.Undefined()
}

// EvaluateSumGaussian and friends lift the rational evaluators to Gaussian
// operands by evaluating real and imaginary parts independently (§4.3).
func EvaluateSumGaussian(v, w expr.Expr) expr.Expr {
	return expr.GaussianOf(
		EvaluateSum(expr.Re(v), expr.Re(w)),
		EvaluateSum(expr.Im(v), expr.Im(w)),
	)
}

func EvaluateDifferenceGaussian(v, w expr.Expr) expr.Expr {
	return expr.GaussianOf(
		EvaluateDifference(expr.Re(v), expr.Re(w)),
		EvaluateDifference(expr.Im(v), expr.Im(w)),
	)
}

func EvaluateProductGaussian(v, w expr.Expr) expr.Expr {
	vRe, vIm, wRe, wIm := expr.Re(v), expr.Im(v), expr.Re(w), expr.Im(w)
	return expr.GaussianOf(
		EvaluateDifference(EvaluateProduct(vRe, wRe), EvaluateProduct(vIm, wIm)),
		EvaluateSum(EvaluateProduct(vRe, wIm), EvaluateProduct(vIm, wRe)),
	)
}

func EvaluateQuotientGaussian(v, w expr.Expr) expr.Expr {
	wRe, wIm := expr.Re(w), expr.Im(w)
	if expr.NumeratorRNE(wRe) == 0 && expr.NumeratorRNE(wIm) == 0 {
		return expr.Undefined()
	}
	vRe, vIm := expr.Re(v), expr.Im(v)
	d := EvaluateSum(EvaluatePower(wRe, 2), EvaluatePower(wIm, 2))
	return expr.GaussianOf(
		EvaluateQuotient(EvaluateSum(EvaluateProduct(vRe, wRe), EvaluateProduct(vIm, wIm)), d),
		EvaluateQuotient(EvaluateDifference(EvaluateProduct(vIm, wRe), EvaluateProduct(vRe, wIm)), d),
	)
}

func EvaluatePowerGaussian(v expr.Expr, n int64) expr.Expr {
	re, im := expr.Re(v), expr.Im(v)
	if expr.NumeratorRNE(re) != 0 || expr.NumeratorRNE(im) != 0 {
		switch {
		case n > 0:
			s := EvaluatePowerGaussian(v, n-1)
			return EvaluateProductGaussian(s, v)
		case n == 0:
			return expr.Int(1)
		case n == -1:
			return EvaluateQuotientGaussian(expr.Int(1), v)
		default:
			s := EvaluateQuotientGaussian(expr.Int(1), v)
			return EvaluatePowerGaussian(s, -n)
		}
	}
	if n >= 1 {
		return expr.Int(0)
	}
	return expr.Undefined()
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// SimplifyRationalNumber reduces a Fraction to standard form (positive
// denominator, coprime numerator/denominator) or collapses it to Integer
// when the denominator divides the numerator (§4.4).
func SimplifyRationalNumber(u expr.Expr) expr.Expr {
	if u.Kind == expr.KindInteger {
		return u
	}
	n, d := u.Num, u.Den
	if n%d == 0 {
		return expr.Int(n / d)
	}
	g := gcd(n, d)
	if d < 0 {
		n, d = -n, -d
	}
	return expr.Frac(n/g, d/g)
}

// SimplifyRNE reduces a rational number expression (built from
// integers/fractions and + - * / ^) to a standard-form Integer/Fraction or
// Undefined (§4.4).
func SimplifyRNE(u expr.Expr) expr.Expr {
	v := simplifyRNERecursive(u)
	if v.IsUndefined() {
		return expr.Undefined()
	}
	return SimplifyRationalNumber(v)
}

func simplifyRNERecursive(u expr.Expr) expr.Expr {
	switch u.Kind {
	case expr.KindInteger:
		return u
	case expr.KindFraction:
		if u.Den == 0 {
			return expr.Undefined()
		}
		return u
	}
	switch len(u.Operands) {
	case 1:
		v := simplifyRNERecursive(u.Operands[0])
		if v.IsUndefined() {
			return expr.Undefined()
		}
		switch u.Kind {
		case expr.KindSum:
			return v
		case expr.KindDifference:
			return EvaluateProduct(expr.Int(-1), v)
		}
	case 2:
		switch u.Kind {
		case expr.KindSum, expr.KindProduct, expr.KindDifference, expr.KindQuotient:
			v := simplifyRNERecursive(u.Operands[0])
			w := simplifyRNERecursive(u.Operands[1])
			if v.IsUndefined() || w.IsUndefined() {
				return expr.Undefined()
			}
			switch u.Kind {
			case expr.KindSum:
				return EvaluateSum(v, w)
			case expr.KindDifference:
				return EvaluateDifference(v, w)
			case expr.KindProduct:
				return EvaluateProduct(v, w)
			case expr.KindQuotient:
				return EvaluateQuotient(v, w)
			}
		case expr.KindPower:
			v := simplifyRNERecursive(u.Operands[0])
			if v.IsUndefined() {
				return expr.Undefined()
			}
			return EvaluatePower(v, expr.NumeratorRNE(u.Operands[1]))
		}
	}
	return expr.Undefined()
}

// SimplifyGaussianNumber collapses Gaussian(re, im) with im == 0 to re,
// after reducing both components via SimplifyRationalNumber (§3 invariant
// 3, §4.4).
func SimplifyGaussianNumber(u expr.Expr) expr.Expr {
	switch u.Kind {
	case expr.KindInteger:
		return u
	case expr.KindFraction:
		return SimplifyRationalNumber(u)
	case expr.KindGaussian:
		r := SimplifyRationalNumber(u.Operands[0])
		i := SimplifyRationalNumber(u.Operands[1])
		if i.Kind == expr.KindInteger && i.Int == 0 {
			return r
		}
		return expr.GaussianOf(r, i)
	default:
		return u
	}
}

// SimplifyGRNE is SimplifyRNE generalized to admit Gaussian atoms (§4.4).
func SimplifyGRNE(u expr.Expr) expr.Expr {
	v := simplifyGRNERecursive(u)
	if v.IsUndefined() {
		return expr.Undefined()
	}
	return SimplifyGaussianNumber(v)
}

func simplifyGRNERecursive(u expr.Expr) expr.Expr {
	switch u.Kind {
	case expr.KindInteger:
		return u
	case expr.KindFraction:
		if u.Den == 0 {
			return expr.Undefined()
		}
		return u
	case expr.KindGaussian:
		return u
	}
	switch len(u.Operands) {
	case 1:
		v := simplifyGRNERecursive(u.Operands[0])
		if v.IsUndefined() {
			return expr.Undefined()
		}
		switch u.Kind {
		case expr.KindSum:
			return v
		case expr.KindDifference:
			return EvaluateProductGaussian(expr.Int(-1), v)
		}
	case 2:
		switch u.Kind {
		case expr.KindSum, expr.KindProduct, expr.KindDifference, expr.KindQuotient:
			v := simplifyGRNERecursive(u.Operands[0])
			w := simplifyGRNERecursive(u.Operands[1])
			if v.IsUndefined() || w.IsUndefined() {
				return expr.Undefined()
			}
			switch u.Kind {
			case expr.KindSum:
				return EvaluateSumGaussian(v, w)
			case expr.KindDifference:
				return EvaluateDifferenceGaussian(v, w)
			case expr.KindProduct:
				return EvaluateProductGaussian(v, w)
			case expr.KindQuotient:
				return EvaluateQuotientGaussian(v, w)
			}
		case expr.KindPower:
			v := simplifyGRNERecursive(u.Operands[0])
			if v.IsUndefined() {
				return expr.Undefined()
			}
			return EvaluatePowerGaussian(v, expr.NumeratorRNE(u.Operands[1]))
		}
	}
	return expr.Undefined()
}
