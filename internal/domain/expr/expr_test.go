package expr_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := expr.Sum(expr.Int(1), expr.Sym("x"))
	b := expr.Sum(expr.Int(1), expr.Sym("x"))
	c := expr.Sum(expr.Int(2), expr.Sym("x"))

	assert.True(t, expr.Equal(a, b))
	assert.False(t, expr.Equal(a, c))
}

func TestIsAtomic(t *testing.T) {
	assert.True(t, expr.IsAtomic(expr.Undefined()))
	assert.True(t, expr.IsAtomic(expr.Sym("x")))
	assert.True(t, expr.IsAtomic(expr.Int(1)))
	assert.True(t, expr.IsAtomic(expr.Frac(1, 2)))
	assert.True(t, expr.IsAtomic(expr.Bool(true)))
	assert.False(t, expr.IsAtomic(expr.Sum(expr.Int(1), expr.Int(2))))
}

func TestAccessorsOnPower(t *testing.T) {
	p := expr.Power(expr.Sym("x"), expr.Int(2))
	require.True(t, expr.Equal(expr.Base(p), expr.Sym("x")))
	require.True(t, expr.Equal(expr.Exponent(p), expr.Int(2)))

	atom := expr.Sym("y")
	assert.True(t, expr.Equal(expr.Base(atom), atom))
	assert.True(t, expr.Equal(expr.Exponent(atom), expr.Int(1)))
}

func TestProductCoeffAndRest(t *testing.T) {
	prod := expr.Product(expr.Int(2), expr.Sym("a"), expr.Sym("b"))
	assert.True(t, expr.Equal(expr.ProductCoeff(prod), expr.Int(2)))
	assert.True(t, expr.Equal(expr.ProductRest(prod), expr.Product(expr.Sym("a"), expr.Sym("b"))))

	noCoeff := expr.Product(expr.Sym("a"), expr.Sym("b"))
	assert.True(t, expr.Equal(expr.ProductCoeff(noCoeff), expr.Int(1)))
	assert.True(t, expr.Equal(expr.ProductRest(noCoeff), noCoeff))
}

func TestReIm(t *testing.T) {
	g := expr.GaussianOf(expr.Int(3), expr.Int(2))
	assert.True(t, expr.Equal(expr.Re(g), expr.Int(3)))
	assert.True(t, expr.Equal(expr.Im(g), expr.Int(2)))

	assert.True(t, expr.Equal(expr.Re(expr.Int(5)), expr.Int(5)))
	assert.True(t, expr.Equal(expr.Im(expr.Int(5)), expr.Int(0)))
}

func TestFreeOf(t *testing.T) {
	x := expr.Sym("x")
	u := expr.Sum(expr.Int(1), expr.Product(expr.Int(2), x))
	assert.False(t, expr.FreeOf(u, x))
	assert.True(t, expr.FreeOf(u, expr.Sym("y")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "3/4", expr.Frac(3, 4).String())
	assert.Equal(t, "undefined", expr.Undefined().String())
	assert.Equal(t, "True", expr.Bool(true).String())
	assert.Equal(t, "(x ^ 2)", expr.Power(expr.Sym("x"), expr.Int(2)).String())
	assert.Equal(t, "(x)!", expr.Factorial(expr.Sym("x")).String())

	i := expr.GaussianOf(expr.Int(0), expr.Int(1))
	assert.Equal(t, "\U0001D55A", i.String())

	g := expr.GaussianOf(expr.Frac(1, 2), expr.Frac(5, 2))
	assert.Equal(t, "(1/2+5/2\U0001D55A)", g.String())
}
