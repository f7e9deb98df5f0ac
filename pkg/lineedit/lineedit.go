// Package lineedit implements a minimal completion-capable line editor.
//
// It is the host-side line-editing subsystem the ioscope isolator
// manipulates: a single completion hook that can be read and swapped, plus
// an availability probe. Line editing only operates when the input stream is
// a real terminal; everywhere else the editor degrades to plain buffered
// reads and reports itself unavailable.
package lineedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/0thm4n3/ioscope/pkg/ports"
)

// ErrInterrupted is returned by ReadLine when the user cancels the current
// line with Ctrl+C.
var ErrInterrupted = errors.New("line input interrupted")

// Editor reads lines with optional tab completion.
// It implements ports.LineEditor.
type Editor struct {
	in        io.Reader
	out       io.Writer
	completer ports.Completer
	reader    *bufio.Reader
}

// New creates an editor reading from in and echoing to out.
// Raw-mode editing requires in to be a terminal *os.File; any other reader
// still works through the buffered fallback.
func New(in io.Reader, out io.Writer) *Editor {
	return &Editor{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Available reports whether interactive line editing can operate: the input
// must be a file descriptor attached to a terminal.
func (e *Editor) Available() bool {
	f, ok := e.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Completer returns the currently installed completion hook (nil if none).
func (e *Editor) Completer() ports.Completer {
	return e.completer
}

// SetCompleter installs c as the completion hook. Nil disables completion.
func (e *Editor) SetCompleter(c ports.Completer) {
	e.completer = c
}

// ReadLine prompts and reads one line.
//
// On a terminal it runs in raw mode with tab completion, backspace editing,
// Ctrl+C (ErrInterrupted) and Ctrl+D on an empty line (io.EOF). On anything
// else it prints the prompt and reads a buffered line.
func (e *Editor) ReadLine(prompt string) (string, error) {
	if !e.Available() {
		return e.readBuffered(prompt)
	}
	return e.readRaw(prompt)
}

func (e *Editor) readBuffered(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	line, err := e.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Last line without trailing newline is still a line.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (e *Editor) readRaw(prompt string) (line string, err error) {
	f := e.in.(*os.File)
	fd := int(f.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if restoreErr := term.Restore(fd, oldState); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	var buf []rune
	fmt.Fprint(e.out, prompt)

	one := make([]byte, 1)
	for {
		if _, err := f.Read(one); err != nil {
			return "", err
		}

		switch c := one[0]; {
		case c == '\r' || c == '\n':
			fmt.Fprint(e.out, "\r\n")
			return string(buf), nil

		case c == 0x03: // Ctrl+C
			fmt.Fprint(e.out, "\r\n")
			return "", ErrInterrupted

		case c == 0x04: // Ctrl+D
			if len(buf) == 0 {
				fmt.Fprint(e.out, "\r\n")
				return "", io.EOF
			}

		case c == 0x7f || c == 0x08: // Backspace
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				e.redraw(prompt, buf)
			}

		case c == '\t':
			buf = e.complete(buf)
			e.redraw(prompt, buf)

		case c >= 0x20 && c < 0x7f:
			buf = append(buf, rune(c))
			fmt.Fprint(e.out, string(rune(c)))
		}
	}
}

// complete applies the first completion candidate for the current buffer.
// Without a completer, or when the hook offers nothing new, the buffer is
// left untouched.
func (e *Editor) complete(buf []rune) []rune {
	if e.completer == nil {
		return buf
	}
	candidates := e.completer.Complete(string(buf))
	if len(candidates) == 0 {
		return buf
	}
	return []rune(candidates[0])
}

func (e *Editor) redraw(prompt string, buf []rune) {
	// Clear the line, then repaint prompt and buffer.
	fmt.Fprint(e.out, "\r\x1b[K", prompt, string(buf))
}
