// Package proc binds the ioscope ports to the real process console.
//
// The process owns exactly one output slot and one line editor. The output
// slot's Default is os.Stdout as handed to the process; Current is whatever
// writer the host last installed (usually a styled wrapper, see Wrapper).
// The line editor reads os.Stdin and reports unavailable when stdin is not
// a terminal.
//
// The slots are process-wide singletons. The isolation protocol assumes a
// single mutator at a time; no locking is performed here.
package proc

import (
	"io"
	"os"

	"github.com/0thm4n3/ioscope/pkg/lineedit"
	"github.com/0thm4n3/ioscope/pkg/ports"
)

type outputSlot struct {
	def     io.Writer
	current io.Writer
}

func (s *outputSlot) Current() io.Writer { return s.current }
func (s *outputSlot) Set(w io.Writer)    { s.current = w }
func (s *outputSlot) Default() io.Writer { return s.def }

var (
	stdout = &outputSlot{def: os.Stdout, current: os.Stdout}
	editor = lineedit.New(os.Stdin, os.Stdout)
)

// Output returns the process-wide output slot.
func Output() ports.OutputSlot {
	return stdout
}

// Editor returns the process-wide line editor.
func Editor() ports.LineEditor {
	return editor
}
