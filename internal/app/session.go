// Package app wires the parser and kernel to the input/output ports,
// orchestrating parse -> substitute -> simplify -> display per line
// exactly as latex2go's ApplicationService orchestrates parse -> generate
// -> write.
package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/algomy/internal/app/config"
	"github.com/ZanzyTHEbar/algomy/internal/domain/parser"
)

// Session is the application service: latex2go's ApplicationService
// renamed and re-pointed at the algebra kernel instead of the code
// generator.
type Session struct {
	source LineSource
	sink   ResultSink
	parser *parser.Parser
	kernel *Kernel
}

// NewSession creates a Session wired to the given ports. startup seeds
// the kernel's bindings (from --config) before the first input line.
func NewSession(source LineSource, sink ResultSink, startup config.Config) (*Session, error) {
	s := &Session{
		source: source,
		sink:   sink,
		parser: parser.NewParser(),
		kernel: NewKernel(),
	}
	for name, text := range startup.Assignments {
		val, err := s.parser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("invalid startup assignment %q: %w", name, err)
		}
		line := parser.Line{Assignment: &parser.Assignment{Name: name, Val: val}}
		s.kernel.EvaluateLine(line)
	}
	return s, nil
}

// LoadSession preloads bindings from path into the session's kernel,
// used by the CLI's --session flag before the first input line.
func (s *Session) LoadSession(path string) error {
	return s.kernel.LoadSession(path)
}

// Run drives the read-parse-evaluate-print loop until the source is
// exhausted or a `:exit` command is seen.
func (s *Session) Run() error {
	for {
		raw, ok, err := s.source.NextLine()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if !ok {
			return nil
		}

		line, err := s.parser.ParseLine(raw)
		if err != nil {
			if err := s.sink.WriteResult(fmt.Sprintf("error: %v", err)); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
			continue
		}

		if line.Command != nil {
			done, err := s.runCommand(*line.Command)
			if err != nil {
				if err := s.sink.WriteResult(fmt.Sprintf("error: %v", err)); err != nil {
					return fmt.Errorf("failed to write result: %w", err)
				}
				continue
			}
			if done {
				return nil
			}
			continue
		}

		result, show := s.kernel.EvaluateLine(line)
		if !show {
			continue
		}
		if err := s.sink.WriteResult(result.String()); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
}

// runCommand executes a `:Name arg` directive. done reports whether the
// session loop should stop (`:Exit`). Command names are matched
// case-insensitively against spec.md §6's `:Exit`, `:ClearSession`,
// `:Clear <symbol>`, plus the supplemented `:SaveSession`/`:LoadSession`
// pair, so the REPL accepts the exact names §6 documents regardless of
// how a caller cases them.
func (s *Session) runCommand(cmd parser.Command) (done bool, err error) {
	switch strings.ToLower(cmd.Name) {
	case "exit", "quit":
		return true, nil
	case "savesession":
		return false, s.kernel.SaveSession(cmd.Arg)
	case "loadsession":
		return false, s.kernel.LoadSession(cmd.Arg)
	case "clearsession":
		s.kernel.ClearSession()
		return false, nil
	case "clear", "clearvariable":
		s.kernel.ClearVariable(cmd.Arg)
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q", cmd.Name)
	}
}
