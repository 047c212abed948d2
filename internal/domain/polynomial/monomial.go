// Package polynomial implements the general-polynomial-expression toolkit
// (C7): the monomial view, degree/coefficient queries, and single-variable
// division/quotient/remainder/expansion/GCD. Like expand, it takes the
// Automatic Simplifier as a callback argument to stay acyclic with
// respect to the simplify package.
package polynomial

import (
	"sort"

	"github.com/ZanzyTHEbar/algomy/internal/domain/classify"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expand"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/numeric"
	"github.com/ZanzyTHEbar/algomy/internal/domain/order"
)

// varPower is one (base, exponent) pair of a Monomial's variable part.
type varPower struct {
	base expr.Expr
	exp  int64
}

// Monomial is {coefficients, [(base, exponent)]} (§4.7 / GLOSSARY).
type Monomial struct {
	coeffs []expr.Expr
	vars   []varPower
}

func newCoeffMonomial(c expr.Expr) Monomial {
	return Monomial{coeffs: []expr.Expr{c}, vars: []varPower{{expr.Int(1), 1}}}
}

func newVarMonomial(v expr.Expr) Monomial {
	return Monomial{vars: []varPower{{v, 1}}}
}

// AsMonomial implements as_monomial(u) (§4.7).
func AsMonomial(u expr.Expr) Monomial {
	if classify.IsGRNE(u) {
		return newCoeffMonomial(u)
	}
	switch u.Kind {
	case expr.KindSymbol:
		return newVarMonomial(u)
	case expr.KindPower:
		if u.Operands[1].Kind == expr.KindInteger {
			return Monomial{vars: []varPower{{u.Operands[0], u.Operands[1].Int}}}
		}
		return newVarMonomial(u)
	case expr.KindProduct:
		var coeffs []expr.Expr
		var vars []varPower
		for _, o := range u.Operands {
			if classify.IsGRNE(o) {
				coeffs = append(coeffs, o)
			} else if o.Kind == expr.KindPower && o.Operands[1].Kind == expr.KindInteger {
				vars = append(vars, varPower{o.Operands[0], o.Operands[1].Int})
			} else {
				vars = append(vars, varPower{o, 1})
			}
		}
		return Monomial{coeffs: coeffs, vars: vars}
	default:
		return newVarMonomial(u)
	}
}

// AsGPE implements as_gpe(u) (§4.7): the list of monomials in u, one per
// Sum operand, or a single monomial otherwise.
func AsGPE(u expr.Expr) []Monomial {
	if u.Kind == expr.KindSum {
		out := make([]Monomial, len(u.Operands))
		for i, o := range u.Operands {
			out[i] = AsMonomial(o)
		}
		return out
	}
	return []Monomial{AsMonomial(u)}
}

// Degree implements Monomial.degree(var) (§4.7).
func (m Monomial) Degree(v expr.Expr) int64 {
	var total int64
	for _, vp := range m.vars {
		if expr.Equal(vp.base, v) {
			total += vp.exp
		}
	}
	return total
}

// Coefficient implements Monomial.coefficient(var, exp) (§4.7).
func (m Monomial) Coefficient(simplify expr.SimplifyFunc, v expr.Expr, exp int64) expr.Expr {
	if len(m.vars) == 1 && expr.Equal(m.vars[0].base, v) && m.vars[0].exp == exp {
		if len(m.coeffs) == 0 {
			return expr.Int(1)
		}
		product := m.coeffs[0]
		for _, c := range m.coeffs[1:] {
			product = expr.Product(product, c)
		}
		return simplify(product)
	}
	return expr.Int(0)
}

// DegreeGPE implements degree_gpe(u, var) (§4.7, §8).
func DegreeGPE(u, v expr.Expr) int64 {
	var max int64
	for _, m := range AsGPE(u) {
		if d := m.Degree(v); d > max {
			max = d
		}
	}
	return max
}

// CoefficientGPE implements coefficient_gpe(u, var, exp) (§4.7).
func CoefficientGPE(simplify expr.SimplifyFunc, u, v expr.Expr, exp int64) expr.Expr {
	sum := expr.Int(0)
	for _, m := range AsGPE(u) {
		sum = expr.Sum(sum, m.Coefficient(simplify, v, exp))
	}
	return simplify(sum)
}

// LeadingCoefficientGPE implements leading_coefficient_gpe(u, var) (§4.7).
func LeadingCoefficientGPE(simplify expr.SimplifyFunc, u, v expr.Expr) expr.Expr {
	return CoefficientGPE(simplify, u, v, DegreeGPE(u, v))
}

// VariablesGPE implements variables(u) (§4.7): the sorted, deduplicated
// set of every non-GRNE base across u's monomials.
func VariablesGPE(u expr.Expr) []expr.Expr {
	var vars []expr.Expr
	for _, m := range AsGPE(u) {
		for _, vp := range m.vars {
			if !(vp.exp == 1 && vp.base.Kind == expr.KindInteger && vp.base.Int == 1) {
				vars = append(vars, vp.base)
			}
		}
	}
	sort.SliceStable(vars, func(i, j int) bool { return order.Less(vars[i], vars[j]) })
	out := vars[:0:0]
	for i, v := range vars {
		if i > 0 && expr.Equal(v, vars[i-1]) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// evaluateQuotient is the rational-evaluator leg used by polynomial
// division to divide leading coefficients (§4.3's eval_quotient, applied
// here to GRNE leading coefficients).
func evaluateQuotient(v, w expr.Expr) expr.Expr {
	if v.IsNumeric() && w.IsNumeric() {
		if v.Kind == expr.KindGaussian || w.Kind == expr.KindGaussian {
			return numeric.EvaluateQuotientGaussian(v, w)
		}
		return numeric.EvaluateQuotient(v, w)
	}
	return expr.Quotient(v, w)
}

// Division implements polynomial_division(u, v, x) (§4.7).
func Division(simplify expr.SimplifyFunc, u, v, x expr.Expr) (q, r expr.Expr) {
	q = expr.Int(0)
	r = u
	m := DegreeGPE(r, x)
	n := DegreeGPE(v, x)
	lcv := LeadingCoefficientGPE(simplify, v, x)
	for m >= n {
		lcr := LeadingCoefficientGPE(simplify, r, x)
		s := evaluateQuotient(lcr, lcv)
		q = simplify(expr.Sum(q, expr.Product(s, expr.Power(x, expr.Int(m-n)))))
		inner := expr.Product(
			expr.Difference(v, expr.Product(lcv, expr.Power(x, expr.Int(n)))),
			s,
			expr.Power(x, expr.Int(m-n)),
		)
		r = expand.AlgebraicExpand(simplify, simplify(expr.Difference(
			expr.Difference(r, expr.Product(lcr, expr.Power(x, expr.Int(m)))),
			inner,
		)))
		m = DegreeGPE(r, x)
	}
	return q, r
}

func Quotient(simplify expr.SimplifyFunc, u, v, x expr.Expr) expr.Expr {
	q, _ := Division(simplify, u, v, x)
	return q
}

func Remainder(simplify expr.SimplifyFunc, u, v, x expr.Expr) expr.Expr {
	_, r := Division(simplify, u, v, x)
	return r
}

// Expansion implements polynomial_expansion(u, v, x, t) (§4.7).
func Expansion(simplify expr.SimplifyFunc, u, v, x, t expr.Expr) expr.Expr {
	if u.IsZero() {
		return u
	}
	q, r := Division(simplify, u, v, x)
	return expand.AlgebraicExpand(simplify, expr.Sum(expr.Product(t, Expansion(simplify, q, v, x, t)), r))
}

// GCD implements polynomial_gcd(u, v, x) (§4.7): Euclidean loop over
// polynomial remainders, returning a monic result. Per DESIGN.md's
// open-question note, behavior is defined only when u and v are genuine
// single-variable polynomials in x; callers relying on non-polynomial
// inputs (e.g. a base that is itself a Sum) get whatever Degree/Coefficient
// fall through to, not a validated error.
func GCD(simplify expr.SimplifyFunc, u, v, x expr.Expr) expr.Expr {
	if u.IsZero() && v.IsZero() {
		return expr.Int(0)
	}
	a, b := u, v
	for {
		if b.IsZero() {
			lc := LeadingCoefficientGPE(simplify, a, x)
			return expand.AlgebraicExpand(simplify, simplify(expr.Product(expr.Quotient(expr.Int(1), lc), a)))
		}
		r := simplify(Remainder(simplify, a, b, x))
		a, b = b, r
	}
}
