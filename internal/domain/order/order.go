// Package order implements the canonical total order on expressions (§4.2
// of the kernel's expression algebra) that sorts operands of commutative
// operators so that structural equality coincides with semantic equality
// in automatically simplified form.
package order

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
)

// symbolCollator backs the Symbol-vs-Symbol leg of the order with a real
// Unicode collation key instead of a raw byte comparison. For names that
// differ only in lowercase letters and digits this agrees with byte order;
// it differs for mixed case and underscores (collation puts "a" before
// "B" and "a" before "A", byte order puts the capital first).
var symbolCollator = collate.New(language.Und)

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b under the canonical order. It is a strict total order over
// automatically-simplified expressions: antisymmetric, transitive, and
// trichotomous.
func Compare(a, b expr.Expr) int {
	switch {
	case isNumeric(a) && isNumeric(b):
		n1, d1 := expr.NumeratorRNE(a), expr.DenominatorRNE(a)
		n2, d2 := expr.NumeratorRNE(b), expr.DenominatorRNE(b)
		return cmpInt64(n1*d2, n2*d1)

	case a.Kind == expr.KindGaussian && b.Kind == expr.KindGaussian:
		if c := Compare(expr.Re(a), expr.Re(b)); c != 0 {
			return c
		}
		return Compare(expr.Im(a), expr.Im(b))

	case a.Kind == expr.KindBoolean && b.Kind == expr.KindBoolean:
		return cmpBool(a.Bool, b.Bool)

	case a.Kind == expr.KindSymbol && b.Kind == expr.KindSymbol:
		return symbolCollator.CompareString(a.Name, b.Name)

	case (a.Kind == expr.KindSum && b.Kind == expr.KindSum) ||
		(a.Kind == expr.KindProduct && b.Kind == expr.KindProduct) ||
		(a.Kind == expr.KindAnd && b.Kind == expr.KindAnd) ||
		(a.Kind == expr.KindOr && b.Kind == expr.KindOr):
		return compareNary(a, b)

	case a.Kind == expr.KindPower && b.Kind == expr.KindPower:
		if c := Compare(expr.Base(a), expr.Base(b)); c != 0 {
			return c
		}
		return Compare(expr.Exponent(a), expr.Exponent(b))

	case a.Kind == expr.KindFactorial && b.Kind == expr.KindFactorial:
		return Compare(a.Operands[0], b.Operands[0])

	case a.Kind == expr.KindFunc && b.Kind == expr.KindFunc:
		return compareFunc(a, b)

	case isNumeric(a) && isNumericOrHigher(b, 0):
		return -1
	case a.Kind == expr.KindGaussian && rank(b) > rankGaussian:
		return -1
	case a.Kind == expr.KindBoolean && rank(b) > rankBoolean:
		return -1

	case a.Kind == expr.KindAnd && isPromotable(b.Kind, rankAnd):
		return Compare(a, expr.And(b))
	case a.Kind == expr.KindOr && isPromotable(b.Kind, rankOr):
		return Compare(a, expr.Or(b))
	case a.Kind == expr.KindNot && isPromotable(b.Kind, rankNot):
		if expr.Equal(a.Operands[0], b) {
			return 1
		}
		return Compare(a, expr.Not(b))
	case a.Kind == expr.KindProduct && isPromotable(b.Kind, rankProduct):
		return Compare(a, expr.Product(b))
	case a.Kind == expr.KindPower && isPromotable(b.Kind, rankPower):
		return Compare(a, expr.Power(b, expr.Int(1)))
	case a.Kind == expr.KindSum && isPromotable(b.Kind, rankSum):
		return Compare(a, expr.Sum(b))
	case a.Kind == expr.KindFactorial && isPromotable(b.Kind, rankFactorial):
		if expr.Equal(a.Operands[0], b) {
			return 1
		}
		return Compare(a, expr.Factorial(b))
	case a.Kind == expr.KindFunc && b.Kind == expr.KindSymbol:
		if a.Name == b.Name {
			return 1
		}
		return symbolCollator.CompareString(a.Name, b.Name)

	default:
		return -Compare(b, a)
	}
}

// Less reports a < b.
func Less(a, b expr.Expr) bool { return Compare(a, b) < 0 }

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func cmpBool(x, y bool) int {
	if x == y {
		return 0
	}
	if !x && y {
		return -1
	}
	return 1
}

func isNumeric(x expr.Expr) bool {
	return x.Kind == expr.KindInteger || x.Kind == expr.KindFraction
}

// rank implements the heterogeneous-kind precedence chain of §4.2:
// numeric < Gaussian < Boolean < And < Or < Not < Product < Power < Sum <
// Factorial < Func < Symbol.
const (
	rankNumeric = iota
	rankGaussian
	rankBoolean
	rankAnd
	rankOr
	rankNot
	rankProduct
	rankPower
	rankSum
	rankFactorial
	rankFunc
	rankSymbol
	rankOther
)

func rank(x expr.Expr) int {
	switch x.Kind {
	case expr.KindInteger, expr.KindFraction:
		return rankNumeric
	case expr.KindGaussian:
		return rankGaussian
	case expr.KindBoolean:
		return rankBoolean
	case expr.KindAnd:
		return rankAnd
	case expr.KindOr:
		return rankOr
	case expr.KindNot:
		return rankNot
	case expr.KindProduct:
		return rankProduct
	case expr.KindPower:
		return rankPower
	case expr.KindSum:
		return rankSum
	case expr.KindFactorial:
		return rankFactorial
	case expr.KindFunc:
		return rankFunc
	case expr.KindSymbol:
		return rankSymbol
	default:
		return rankOther
	}
}

func isNumericOrHigher(x expr.Expr, _ int) bool { return rank(x) > rankNumeric }

// isPromotable reports whether kind k sits strictly above selfRank in the
// precedence chain, i.e. is a candidate for the "promote the simpler side"
// rule used when comparing an a whose own kind has rank selfRank against it.
func isPromotable(k expr.Kind, selfRank int) bool {
	return rank(expr.Expr{Kind: k}) > selfRank
}

func compareNary(a, b expr.Expr) int {
	m := len(a.Operands) - 1
	n := len(b.Operands) - 1
	if !expr.Equal(a.Operands[m], b.Operands[n]) {
		return Compare(a.Operands[m], b.Operands[n])
	}
	lim := m
	if n < lim {
		lim = n
	}
	for k := 1; k <= lim; k++ {
		if !expr.Equal(a.Operands[m-k], b.Operands[n-k]) {
			return Compare(a.Operands[m-k], b.Operands[n-k])
		}
	}
	return cmpInt64(int64(m), int64(n))
}

// compareFunc orders Func nodes by name, then operand-by-operand, then
// arity (§4.2) — arity-0 calls like f() have no operands to index, so
// the operand loop is bounded by the shorter operand list before it
// touches either slice.
func compareFunc(a, b expr.Expr) int {
	if a.Name != b.Name {
		if a.Name < b.Name {
			return -1
		}
		return 1
	}
	m := len(a.Operands)
	n := len(b.Operands)
	lim := m
	if n < lim {
		lim = n
	}
	for k := 0; k < lim; k++ {
		if !expr.Equal(a.Operands[k], b.Operands[k]) {
			return Compare(a.Operands[k], b.Operands[k])
		}
	}
	return cmpInt64(int64(m), int64(n))
}
