package function_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/function"
	"github.com/ZanzyTHEbar/algomy/internal/domain/simplify"
	"github.com/stretchr/testify/assert"
)

func TestDispatchNumeratorDenominator(t *testing.T) {
	got := function.Dispatch(simplify.Simplify, "Numerator", []expr.Expr{expr.Frac(3, 4)})
	assert.True(t, expr.Equal(got, expr.Int(3)))

	got = function.Dispatch(simplify.Simplify, "Denominator", []expr.Expr{expr.Frac(3, 4)})
	assert.True(t, expr.Equal(got, expr.Int(4)))
}

func TestDispatchClassifyPredicates(t *testing.T) {
	assert.True(t, expr.Equal(
		function.Dispatch(simplify.Simplify, "IsInteger", []expr.Expr{expr.Int(5)}),
		expr.Bool(true),
	))
	assert.True(t, expr.Equal(
		function.Dispatch(simplify.Simplify, "IsRNE", []expr.Expr{expr.Sym("x")}),
		expr.Bool(false),
	))
}

func TestDispatchUnknownPassesThrough(t *testing.T) {
	got := function.Dispatch(simplify.Simplify, "Mystery", []expr.Expr{expr.Sym("a")})
	assert.True(t, expr.Equal(got, expr.FuncCall("Mystery", expr.Sym("a"))))
}

func TestSubstitute(t *testing.T) {
	u := expr.Sum(expr.Sym("x"), expr.Power(expr.Sym("x"), expr.Int(2)))
	got := function.Substitute(u, expr.Sym("x"), expr.Int(3))
	want := expr.Sum(expr.Int(3), expr.Power(expr.Int(3), expr.Int(2)))
	assert.True(t, expr.Equal(got, want))
}
