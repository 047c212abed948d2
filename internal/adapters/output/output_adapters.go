// Package output implements app.ResultSink against stdout or a file, the
// output-adapter half of latex2go's output.StdoutAdapter/FileAdapter.
package output

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/algomy/internal/app"
)

// StdoutAdapter implements app.ResultSink by printing each result line
// to standard output, one per line, as a REPL prompt would.
type StdoutAdapter struct{}

func NewStdoutAdapter() *StdoutAdapter { return &StdoutAdapter{} }

func (a *StdoutAdapter) WriteResult(text string) error {
	if _, err := fmt.Println(text); err != nil {
		return fmt.Errorf("failed to write result to stdout: %w", err)
	}
	return nil
}

// FileAdapter implements app.ResultSink by appending each result line to
// a file, used when a script's output is redirected.
type FileAdapter struct {
	f *os.File
}

func NewFileAdapter(path string) (*FileAdapter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %q: %w", path, err)
	}
	return &FileAdapter{f: f}, nil
}

func (a *FileAdapter) WriteResult(text string) error {
	if _, err := fmt.Fprintln(a.f, text); err != nil {
		return fmt.Errorf("failed to write result to file: %w", err)
	}
	return nil
}

func (a *FileAdapter) Close() error { return a.f.Close() }

// NewWriterAdapter picks StdoutAdapter for an empty path, FileAdapter
// otherwise, mirroring latex2go's NewWriterAdapter factory.
func NewWriterAdapter(path string) (interface {
	WriteResult(string) error
}, error) {
	if path == "" {
		return NewStdoutAdapter(), nil
	}
	return NewFileAdapter(path)
}
