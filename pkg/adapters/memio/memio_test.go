package memio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0thm4n3/ioscope/pkg/ports"
)

func TestOutputSlot(t *testing.T) {
	slot, buf := NewBufferSlot()
	assert.Same(t, buf, slot.Default())
	assert.Same(t, buf, slot.Current())

	other := &bytes.Buffer{}
	slot.Set(other)
	assert.Same(t, other, slot.Current())
	assert.Same(t, buf, slot.Default(), "default never changes")
}

func TestEditor_RecordsCompleterInstalls(t *testing.T) {
	ed := NewEditor(true)
	assert.True(t, ed.Available())
	assert.Nil(t, ed.Completer())

	c := ports.CompleterFunc(func(line string) []string { return nil })
	ed.SetCompleter(c)
	ed.SetCompleter(nil)

	require.Len(t, ed.SetCalls, 2)
	assert.NotNil(t, ed.SetCalls[0])
	assert.Nil(t, ed.SetCalls[1])
	assert.Nil(t, ed.Completer())
}

func TestEditor_ScriptedLines(t *testing.T) {
	ed := NewEditor(true)
	ed.Lines = []string{"first", "second"}

	line, err := ed.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = ed.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = ed.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
}
