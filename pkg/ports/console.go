package ports

import "io"

// Completer produces completion candidates for a partial input line.
type Completer interface {
	Complete(line string) []string
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(line string) []string

// Complete calls f(line).
func (f CompleterFunc) Complete(line string) []string {
	return f(line)
}

// OutputSlot exposes a swappable process-wide output stream.
//
// Default is the pristine stream the process started with and never changes.
// Current is whatever writer is installed right now — typically a wrapper
// installed by the host application.
type OutputSlot interface {
	Current() io.Writer
	Set(w io.Writer)
	Default() io.Writer
}

// CompleterSlot exposes the line editor's completion hook.
// A nil Completer means no custom completion is installed.
type CompleterSlot interface {
	Completer() Completer
	SetCompleter(c Completer)
}

// LineEditor is the optional interactive line-editing subsystem.
//
// The subsystem may be entirely absent in a given environment (no terminal
// attached); hosts must probe Available rather than assume presence.
type LineEditor interface {
	CompleterSlot

	// Available reports whether line editing can operate here.
	Available() bool

	// ReadLine prompts and reads one line of input.
	ReadLine(prompt string) (string, error)
}
