package simplify

import "github.com/ZanzyTHEbar/algomy/internal/domain/expr"

// simplifyFactorial implements n! for integer n >= 0 as an iterated
// product; any other input (negative or non-integer) is left unsimplified
// per §4.5 and the open-question note in DESIGN.md.
func simplifyFactorial(u expr.Expr) expr.Expr {
	n := u.Operands[0]
	if n.Kind != expr.KindInteger || n.Int < 0 {
		return u
	}
	result := int64(1)
	for i := int64(2); i <= n.Int; i++ {
		result *= i
	}
	return expr.Int(result)
}
