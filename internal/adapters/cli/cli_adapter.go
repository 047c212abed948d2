// Package cli implements app.LineSource against stdin and script files,
// the input-adapter half of latex2go's Cobra-flag-driven cli.Adapter.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ScannerAdapter implements app.LineSource over any io.Reader, line by
// line, via bufio.Scanner.
type ScannerAdapter struct {
	scanner *bufio.Scanner
}

// NewStdinAdapter reads interactive REPL input from standard input.
func NewStdinAdapter() *ScannerAdapter {
	return &ScannerAdapter{scanner: bufio.NewScanner(os.Stdin)}
}

// NewReaderAdapter reads script lines from an arbitrary reader.
func NewReaderAdapter(r io.Reader) *ScannerAdapter {
	return &ScannerAdapter{scanner: bufio.NewScanner(r)}
}

// NewFileAdapter opens path and reads it line by line as a script.
func NewFileAdapter(path string) (*ScannerAdapter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script file %q: %w", path, err)
	}
	return &ScannerAdapter{scanner: bufio.NewScanner(f)}, nil
}

// NextLine implements app.LineSource.
func (a *ScannerAdapter) NextLine() (string, bool, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("failed to read line: %w", err)
		}
		return "", false, nil
	}
	return a.scanner.Text(), true, nil
}
