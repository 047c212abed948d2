package order

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/stretchr/testify/assert"
)

func TestCompareFuncZeroArity(t *testing.T) {
	f0 := expr.FuncCall("f")
	fx := expr.FuncCall("f", expr.Sym("x"))

	assert.NotPanics(t, func() { Compare(f0, fx) })
	assert.Equal(t, -1, Compare(f0, fx))
	assert.Equal(t, 1, Compare(fx, f0))
}

func TestCompareFuncZeroArityEqual(t *testing.T) {
	assert.Equal(t, 0, Compare(expr.FuncCall("f"), expr.FuncCall("f")))
}

func TestCompareFuncSameArity(t *testing.T) {
	fx := expr.FuncCall("f", expr.Sym("x"))
	fy := expr.FuncCall("f", expr.Sym("y"))
	assert.Equal(t, Compare(expr.Sym("x"), expr.Sym("y")), Compare(fx, fy))
}
