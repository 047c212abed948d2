package app

// LineSource is the input port for retrieving one REPL/script line at a
// time, analogous to latex2go's LatexProvider.
type LineSource interface {
	// NextLine returns the next input line and true, or ok=false once the
	// source is exhausted.
	NextLine() (line string, ok bool, err error)
}

// ResultSink is the output port for display output, analogous to
// latex2go's GoCodeWriter.
type ResultSink interface {
	WriteResult(text string) error
}
