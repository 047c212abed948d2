// External test package: simplify imports function which imports
// polynomial, so these tests (which exercise polynomial through the real
// simplifier) must live outside package polynomial to avoid a cycle.
package polynomial_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/polynomial"
	"github.com/ZanzyTHEbar/algomy/internal/domain/simplify"
	"github.com/stretchr/testify/assert"
)

func x() expr.Expr { return expr.Sym("x") }
func y() expr.Expr { return expr.Sym("y") }

func TestDivisionQuotientExact(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0
	u := expr.Difference(expr.Power(x(), expr.Int(2)), expr.Int(1))
	v := expr.Difference(x(), expr.Int(1))
	q, r := polynomial.Division(simplify.Simplify, u, v, x())
	assert.True(t, expr.Equal(q, expr.Sum(x(), expr.Int(1))) || expr.Equal(q, expr.Sum(expr.Int(1), x())))
	assert.True(t, r.IsZero())
}

func TestGCD(t *testing.T) {
	// gcd(x^2 - 1, x^2 - 3x + 2, x) = x - 1
	u := expr.Difference(expr.Power(x(), expr.Int(2)), expr.Int(1))
	v := simplify.Simplify(expr.Sum(
		expr.Power(x(), expr.Int(2)),
		expr.Product(expr.Int(-3), x()),
		expr.Int(2),
	))
	got := polynomial.GCD(simplify.Simplify, u, v, x())
	want := simplify.Simplify(expr.Difference(x(), expr.Int(1)))
	assert.True(t, expr.Equal(got, want))
}

func TestCoefficientGPE(t *testing.T) {
	// Coefficient((1/3)x + 3y^3 + (x + 1), x, 1) = 4/3
	u := simplify.Simplify(expr.Sum(
		expr.Product(expr.Frac(1, 3), x()),
		expr.Product(expr.Int(3), expr.Power(y(), expr.Int(3))),
		x(), expr.Int(1),
	))
	got := polynomial.CoefficientGPE(simplify.Simplify, u, x(), 1)
	assert.True(t, expr.Equal(got, expr.Frac(4, 3)))
}

func TestDegreeGPE(t *testing.T) {
	u := simplify.Simplify(expr.Sum(expr.Power(x(), expr.Int(3)), x(), expr.Int(1)))
	assert.Equal(t, int64(3), polynomial.DegreeGPE(u, x()))
}
