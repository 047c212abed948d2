package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/algomy/internal/app/session"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/parser"
	"github.com/ZanzyTHEbar/algomy/internal/domain/simplify"
)

// assignment is one (name, raw value) pair, stored unsubstituted and
// unsimplified exactly as written. Grounded on
// `_examples/original_source/src/kernel.rs`'s `Assignment { var, val }`.
type assignment struct {
	name string
	val  expr.Expr
}

// Kernel holds the bindings built up by a sequence of assignment lines
// (C9) in declaration order. A query re-applies every current binding to
// the query expression, in order, before a single final simplification —
// bindings are live formulas, so rebinding one variable retroactively
// changes what an expression built from it evaluates to on the next
// query. It is `_examples/original_source/src/kernel.rs`'s
// `assignments: Vec<Assignment>` kept as a slice rather than a map, since
// a map has no declaration order to replay `evaluate_line`'s sequential
// substitution loop against.
type Kernel struct {
	assignments []assignment
}

func NewKernel() *Kernel {
	return &Kernel{}
}

// EvaluateLine records a new assignment's raw (unsubstituted) value, or
// substitutes every current binding into the line's expression, in
// declaration order, and simplifies the result once. The second return
// value reports whether a result line should be displayed: assignments
// and blank lines produce none, matching spec.md §6's REPL contract.
func (k *Kernel) EvaluateLine(line parser.Line) (*expr.Expr, bool) {
	switch {
	case line.Assignment != nil:
		k.addAssignment(line.Assignment.Name, line.Assignment.Val)
		return nil, false
	case line.Expr != nil:
		bound := k.Substitute(*line.Expr)
		result := simplify.Simplify(bound)
		return &result, true
	default:
		return nil, false
	}
}

// addAssignment overwrites an existing binding's value in place, or
// appends a new one, preserving declaration order (kernel.rs's
// `add_assignment`).
func (k *Kernel) addAssignment(name string, val expr.Expr) {
	for i, a := range k.assignments {
		if a.name == name {
			k.assignments[i].val = val
			return
		}
	}
	k.assignments = append(k.assignments, assignment{name: name, val: val})
}

// Substitute replays every current binding into u, in declaration order,
// so that each substitution sees the effect of the ones before it
// (kernel.rs's `evaluate_line`'s substitution loop).
func (k *Kernel) Substitute(u expr.Expr) expr.Expr {
	for _, a := range k.assignments {
		u = substituteOne(u, a.name, a.val)
	}
	return u
}

// substituteOne recursively replaces every occurrence of the symbol name
// with val, leaving everything else untouched.
func substituteOne(u expr.Expr, name string, val expr.Expr) expr.Expr {
	if u.Kind == expr.KindSymbol {
		if u.Name == name {
			return val
		}
		return u
	}
	return u.Map(func(o expr.Expr) expr.Expr { return substituteOne(o, name, val) })
}

// ClearSession removes every binding.
func (k *Kernel) ClearSession() {
	k.assignments = nil
}

// ClearVariable removes a single binding, if present.
func (k *Kernel) ClearVariable(name string) {
	for i, a := range k.assignments {
		if a.name == name {
			k.assignments = append(k.assignments[:i], k.assignments[i+1:]...)
			return
		}
	}
}

// SaveSession writes the current bindings to path as JSON.
func (k *Kernel) SaveSession(path string) error {
	bindings := make(map[string]expr.Expr, len(k.assignments))
	for _, a := range k.assignments {
		bindings[a.name] = a.val
	}
	if err := session.Save(path, bindings); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadSession merges the bindings stored at path into the kernel,
// overwriting any existing binding with the same name and appending new
// ones in the order the session file's map iterates.
func (k *Kernel) LoadSession(path string) error {
	loaded, err := session.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	for name, val := range loaded {
		k.addAssignment(name, val)
	}
	return nil
}
