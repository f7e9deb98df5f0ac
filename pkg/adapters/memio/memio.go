// Package memio provides in-memory implementations of the ioscope console
// ports, for tests and embedded scenarios where touching process-wide state
// is unacceptable.
package memio

import (
	"bytes"
	"io"

	"github.com/0thm4n3/ioscope/pkg/ports"
)

// OutputSlot is an in-memory ports.OutputSlot.
type OutputSlot struct {
	def     io.Writer
	current io.Writer
}

// NewOutputSlot creates a slot whose default stream is def; the current
// stream starts out equal to the default.
func NewOutputSlot(def io.Writer) *OutputSlot {
	return &OutputSlot{def: def, current: def}
}

// NewBufferSlot creates a slot backed by a fresh bytes.Buffer default and
// returns both.
func NewBufferSlot() (*OutputSlot, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewOutputSlot(buf), buf
}

// Current returns the currently installed writer.
func (s *OutputSlot) Current() io.Writer { return s.current }

// Set installs w as the current writer.
func (s *OutputSlot) Set(w io.Writer) { s.current = w }

// Default returns the pristine default writer.
func (s *OutputSlot) Default() io.Writer { return s.def }

// Editor is a scriptable ports.LineEditor double.
//
// SetCalls records every completer installed through SetCompleter, in order,
// so tests can assert on the exact save/override/restore sequence.
type Editor struct {
	available bool
	completer ports.Completer

	// Lines is consumed front-to-back by ReadLine; when exhausted,
	// ReadLine returns io.EOF.
	Lines []string

	// SetCalls records each SetCompleter argument.
	SetCalls []ports.Completer
}

// NewEditor creates an editor double reporting the given availability.
func NewEditor(available bool) *Editor {
	return &Editor{available: available}
}

// SetAvailable flips the availability the double reports.
func (e *Editor) SetAvailable(available bool) { e.available = available }

// Available implements ports.LineEditor.
func (e *Editor) Available() bool { return e.available }

// Completer returns the installed completion hook.
func (e *Editor) Completer() ports.Completer { return e.completer }

// SetCompleter installs c and records the call.
func (e *Editor) SetCompleter(c ports.Completer) {
	e.completer = c
	e.SetCalls = append(e.SetCalls, c)
}

// ReadLine pops the next scripted line.
func (e *Editor) ReadLine(prompt string) (string, error) {
	if len(e.Lines) == 0 {
		return "", io.EOF
	}
	line := e.Lines[0]
	e.Lines = e.Lines[1:]
	return line, nil
}
