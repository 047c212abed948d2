// Package session persists a Kernel's variable bindings to a JSON file
// between REPL invocations (§5's supplemented session save/restore),
// read with gjson and written incrementally with sjson exactly as a
// config/log patcher would.
package session

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/ZanzyTHEbar/algomy/internal/domain/parser"
	"github.com/ZanzyTHEbar/algomy/internal/domain/simplify"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Save writes bindings to path as a flat JSON object mapping each symbol
// name to the display text of its value as given (Save does not simplify
// it; Load does). Bindings are stored as text, not a
// custom tree encoding, so a saved session is just a replayable batch of
// assignment lines (the same idea as the original CLI's script-driven
// restart, formalized as a file).
func Save(path string, bindings map[string]expr.Expr) error {
	doc := "{}"
	var err error
	for name, val := range bindings {
		doc, err = sjson.Set(doc, name, val.String())
		if err != nil {
			return fmt.Errorf("encoding binding %q: %w", name, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing session file %q: %w", path, err)
	}
	return nil
}

// Load reads a session file written by Save, re-parsing and re-simplifying
// each stored expression text.
func Load(path string) (map[string]expr.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file %q: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("session file %q is not valid JSON", path)
	}
	bindings := make(map[string]expr.Expr)
	var parseErr error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		p := parser.NewParser()
		e, err := p.Parse(value.String())
		if err != nil {
			parseErr = fmt.Errorf("parsing binding %q (%q): %w", key.String(), value.String(), err)
			return false
		}
		bindings[key.String()] = simplify.Simplify(e)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return bindings, nil
}
