package ioscope

import (
	"io"

	"github.com/0thm4n3/ioscope/pkg/adapters/proc"
	"github.com/0thm4n3/ioscope/pkg/ports"
)

// Version of the ioscope library.
const Version = "0.1.0"

// Isolator composes a validated configuration with the console handles it
// manipulates. Its zero value is not usable; construct it with New.
//
// An Isolator is safe for nested (LIFO) use from a single goroutine. It is
// not safe under concurrent invocation: the slots it mutates are shared
// singletons while the saved values live in the individual call frames.
type Isolator struct {
	cfg    Config
	output ports.OutputSlot
	editor ports.LineEditor
}

// Option configures an Isolator under construction.
type Option func(*settings)

type settings struct {
	flags  map[string]any
	output ports.OutputSlot
	editor ports.LineEditor
}

// WithReadline explicitly enables or disables isolation of the line-editor
// completion hook.
func WithReadline(enabled bool) Option {
	return func(s *settings) {
		s.flags[EntityReadline] = enabled
	}
}

// WithStdout explicitly enables or disables isolation of the standard
// output stream.
func WithStdout(enabled bool) Option {
	return func(s *settings) {
		s.flags[EntityStdout] = enabled
	}
}

// WithConfigMap supplies the entity selection as a raw mapping, validated
// exactly like ConfigFromMap. Useful when the selection comes from a
// configuration file.
func WithConfigMap(m map[string]any) Option {
	return func(s *settings) {
		for key, value := range m {
			s.flags[key] = value
		}
	}
}

// WithOutputSlot injects a custom output slot, bypassing the process
// console. Mainly for tests and embedded hosts.
func WithOutputSlot(slot ports.OutputSlot) Option {
	return func(s *settings) {
		s.output = slot
	}
}

// WithEditor injects a custom line editor, bypassing the process console.
func WithEditor(ed ports.LineEditor) Option {
	return func(s *settings) {
		s.editor = ed
	}
}

// New builds an Isolator.
//
// With no entity options the full default configuration applies (isolate
// everything). Entity options are all-or-nothing: naming one entity but not
// the other fails with ErrIncompleteConfiguration. All configuration errors
// surface here, at construction time, never at call time.
//
// By default the isolator operates on the real process console
// (pkg/adapters/proc); WithOutputSlot and WithEditor override that.
func New(opts ...Option) (*Isolator, error) {
	s := &settings{flags: make(map[string]any)}
	for _, opt := range opts {
		opt(s)
	}

	cfg, err := ConfigFromMap(s.flags)
	if err != nil {
		return nil, err
	}

	iso := &Isolator{
		cfg:    cfg,
		output: s.output,
		editor: s.editor,
	}
	if iso.output == nil {
		iso.output = proc.Output()
	}
	if iso.editor == nil {
		iso.editor = proc.Editor()
	}
	return iso, nil
}

// Config returns the validated configuration the isolator was built with.
func (iso *Isolator) Config() Config {
	return iso.cfg
}

// Run executes fn inside an isolated I/O context.
//
// Entities marked for isolation are saved and overridden before fn runs and
// restored afterwards on every exit path, including panics. fn's error is
// returned unchanged; Run adds no failure of its own.
func (iso *Isolator) Run(fn func() error) error {
	restore := iso.acquire()
	defer restore()
	return fn()
}

// Wrap returns a callable equivalent to fn that additionally performs
// isolation on each invocation.
func (iso *Isolator) Wrap(fn func() error) func() error {
	return func() error {
		return iso.Run(fn)
	}
}

// Run executes fn inside iso's isolated I/O context and passes its result
// through. It exists so value-returning functions keep their exact calling
// convention.
func Run[T any](iso *Isolator, fn func() (T, error)) (T, error) {
	var result T
	err := iso.Run(func() error {
		var innerErr error
		result, innerErr = fn()
		return innerErr
	})
	return result, err
}

// acquire performs the save & override phase and returns the matching
// restore function.
//
// The effective entity selection is derived per call: when the line-editing
// subsystem is unavailable in this environment, the readline entity is
// treated as disabled for this invocation only. The stored configuration is
// never touched, so the downgrade cannot leak into later calls.
func (iso *Isolator) acquire() (restore func()) {
	effective := iso.cfg
	if effective.Readline && (iso.editor == nil || !iso.editor.Available()) {
		effective.Readline = false
	}

	var prevCompleter ports.Completer
	if effective.Readline {
		prevCompleter = iso.editor.Completer()
		iso.editor.SetCompleter(neutralCompleter())
	}

	var prevWriter io.Writer
	if effective.Stdout {
		prevWriter = iso.output.Current()
		iso.output.Set(iso.output.Default())
	}

	return func() {
		if effective.Readline {
			iso.editor.SetCompleter(prevCompleter)
		}
		if effective.Stdout {
			iso.output.Set(prevWriter)
		}
	}
}

// neutralCompleter returns the hook installed during isolation: it maps any
// input line to itself, so no custom suggestions appear while the wrapped
// function runs.
func neutralCompleter() ports.Completer {
	return ports.CompleterFunc(func(line string) []string {
		return []string{line}
	})
}
