package proc

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"
)

// Wrapper is a host-style stdout wrapper: every output line is prefixed and
// colored before reaching the underlying stream. It stands in for whatever
// decoration the surrounding application hangs on its console output — the
// kind of writer an isolated call needs to bypass.
type Wrapper struct {
	out         io.Writer
	profile     termenv.Profile
	prefix      string
	atLineStart bool
}

// NewWrapper decorates out with a colored "~ " line prefix.
// The color profile is detected from the environment.
func NewWrapper(out io.Writer) *Wrapper {
	return NewWrapperWithProfile(out, termenv.ColorProfile())
}

// NewWrapperWithProfile decorates out using an explicit color profile.
// Tests pass termenv.Ascii to keep the output free of escape sequences.
func NewWrapperWithProfile(out io.Writer, profile termenv.Profile) *Wrapper {
	return &Wrapper{
		out:         out,
		profile:     profile,
		prefix:      "~ ",
		atLineStart: true,
	}
}

// Write writes p, inserting the styled prefix at each line start.
// The reported length covers p only, never the injected prefix bytes.
func (w *Wrapper) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	for _, b := range p {
		if w.atLineStart {
			buf.WriteString(w.styledPrefix())
			w.atLineStart = false
		}
		buf.WriteByte(b)
		if b == '\n' {
			w.atLineStart = true
		}
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Unwrap returns the underlying stream.
func (w *Wrapper) Unwrap() io.Writer {
	return w.out
}

func (w *Wrapper) styledPrefix() string {
	s := termenv.String(w.prefix).Foreground(w.profile.Color("#818cf8"))
	return s.String()
}
