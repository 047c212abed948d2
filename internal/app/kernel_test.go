package app_test

import (
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/app"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/parser"
	"github.com/stretchr/testify/require"
)

func evalLine(t *testing.T, k *app.Kernel, src string) *expr.Expr {
	t.Helper()
	line, err := parser.NewParser().ParseLine(src)
	require.NoError(t, err)
	result, _ := k.EvaluateLine(line)
	return result
}

// TestRebindPropagatesToDependentBinding covers the maintainer-reported
// regression: `a = b + 1` with `b` unbound, then `b = 2`, then querying
// `a` must yield `3`, not the value frozen at the time `a` was bound.
func TestRebindPropagatesToDependentBinding(t *testing.T) {
	k := app.NewKernel()

	evalLine(t, k, "a = b + 1")
	evalLine(t, k, "b = 2")

	result := evalLine(t, k, "a")
	require.NotNil(t, result)
	require.True(t, expr.Equal(*result, expr.Int(3)))
}

func TestRebindOverwritesInPlace(t *testing.T) {
	k := app.NewKernel()

	evalLine(t, k, "x = 1")
	evalLine(t, k, "x = 2")

	result := evalLine(t, k, "x")
	require.NotNil(t, result)
	require.True(t, expr.Equal(*result, expr.Int(2)))
}

func TestClearVariableRemovesBinding(t *testing.T) {
	k := app.NewKernel()

	evalLine(t, k, "x = 5")
	k.ClearVariable("x")

	result := evalLine(t, k, "x")
	require.NotNil(t, result)
	require.True(t, expr.Equal(*result, expr.Sym("x")))
}
