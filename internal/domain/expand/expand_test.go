package expand_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expand"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/simplify"
	"github.com/stretchr/testify/assert"
)

func TestExpandProductOverSum(t *testing.T) {
	// x*(x+2) -> x^2 + 2x
	u := expr.Product(expr.Sym("x"), expr.Sum(expr.Sym("x"), expr.Int(2)))
	got := expand.AlgebraicExpand(simplify.Simplify, simplify.Simplify(u))
	want := simplify.Simplify(expr.Sum(
		expr.Power(expr.Sym("x"), expr.Int(2)),
		expr.Product(expr.Int(2), expr.Sym("x")),
	))
	assert.True(t, expr.Equal(got, want))
}

func TestExpandBinomialSquare(t *testing.T) {
	// (x+1)^2 -> x^2 + 2x + 1
	u := expr.Power(expr.Sum(expr.Sym("x"), expr.Int(1)), expr.Int(2))
	got := expand.AlgebraicExpand(simplify.Simplify, u)
	want := simplify.Simplify(expr.Sum(
		expr.Power(expr.Sym("x"), expr.Int(2)),
		expr.Product(expr.Int(2), expr.Sym("x")),
		expr.Int(1),
	))
	assert.True(t, expr.Equal(got, want))
}
