package classify_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/classify"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/stretchr/testify/assert"
)

func TestIsInteger(t *testing.T) {
	assert.True(t, classify.IsInteger(expr.Int(3)))
	assert.False(t, classify.IsInteger(expr.Frac(1, 2)))
}

func TestIsRNE(t *testing.T) {
	assert.True(t, classify.IsRNE(expr.Sum(expr.Frac(1, 2), expr.Int(3))))
	assert.True(t, classify.IsRNE(expr.Power(expr.Frac(1, 2), expr.Int(3))))
	assert.False(t, classify.IsRNE(expr.Power(expr.Frac(1, 2), expr.Frac(1, 2))))
	assert.False(t, classify.IsRNE(expr.Sum(expr.Sym("x"), expr.Int(1))))
}

func TestIsGRNE(t *testing.T) {
	g := expr.GaussianOf(expr.Int(1), expr.Int(2))
	assert.True(t, classify.IsGRNE(g))
	assert.True(t, classify.IsGRNE(expr.Sum(g, expr.Int(1))))
	assert.False(t, classify.IsGRNE(expr.Sum(expr.Sym("x"), expr.Int(1))))
}
