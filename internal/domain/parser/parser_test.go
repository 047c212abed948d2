package parser_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/parser"
	"github.com/stretchr/testify/assert"
)

func TestParseLineExpression(t *testing.T) {
	line, err := parser.ParseLine("x + 2*y")
	assert.NoError(t, err)
	assert.NotNil(t, line.Expr)
	want := expr.Sum(expr.Sym("x"), expr.Product(expr.Int(2), expr.Sym("y")))
	assert.True(t, expr.Equal(*line.Expr, want))
}

func TestParseLineUnaryMinus(t *testing.T) {
	line, err := parser.ParseLine("-x")
	assert.NoError(t, err)
	want := expr.Product(expr.Int(-1), expr.Sym("x"))
	assert.True(t, expr.Equal(*line.Expr, want))
}

func TestParseLinePowerRightAssoc(t *testing.T) {
	line, err := parser.ParseLine("x^y^2")
	assert.NoError(t, err)
	want := expr.Power(expr.Sym("x"), expr.Power(expr.Sym("y"), expr.Int(2)))
	assert.True(t, expr.Equal(*line.Expr, want))
}

func TestParseLineAssignment(t *testing.T) {
	line, err := parser.ParseLine("y = x + 1")
	assert.NoError(t, err)
	assert.NotNil(t, line.Assignment)
	assert.Equal(t, "y", line.Assignment.Name)
	want := expr.Sum(expr.Sym("x"), expr.Int(1))
	assert.True(t, expr.Equal(line.Assignment.Val, want))
}

func TestParseLineReservedSymbols(t *testing.T) {
	line, err := parser.ParseLine("I")
	assert.NoError(t, err)
	assert.True(t, expr.Equal(*line.Expr, expr.GaussianOf(expr.Int(0), expr.Int(1))))

	line, err = parser.ParseLine("Undefined")
	assert.NoError(t, err)
	assert.True(t, line.Expr.IsUndefined())

	line, err = parser.ParseLine("True")
	assert.NoError(t, err)
	assert.True(t, expr.Equal(*line.Expr, expr.Bool(true)))
}

func TestParseLineSetAndFunctionNames(t *testing.T) {
	line, err := parser.ParseLine("Union({1, 2}, {2, 3})")
	assert.NoError(t, err)
	want := expr.Union(expr.Set(expr.Int(1), expr.Int(2)), expr.Set(expr.Int(2), expr.Int(3)))
	assert.True(t, expr.Equal(*line.Expr, want))
}

func TestParseLineFuncCall(t *testing.T) {
	line, err := parser.ParseLine("sin(x)")
	assert.NoError(t, err)
	assert.True(t, expr.Equal(*line.Expr, expr.FuncCall("sin", expr.Sym("x"))))
}

func TestParseLineFactorial(t *testing.T) {
	line, err := parser.ParseLine("(x+1)!")
	assert.NoError(t, err)
	assert.True(t, expr.Equal(*line.Expr, expr.Factorial(expr.Sum(expr.Sym("x"), expr.Int(1)))))
}

func TestParseLineBlank(t *testing.T) {
	line, err := parser.ParseLine("")
	assert.NoError(t, err)
	assert.Nil(t, line.Expr)
	assert.Nil(t, line.Assignment)
}

func TestParseLineSyntaxError(t *testing.T) {
	_, err := parser.ParseLine("x +")
	assert.Error(t, err)
}
