package ioscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0thm4n3/ioscope"
)

func TestConfigFromMap_EmptyEnablesEverything(t *testing.T) {
	for _, m := range []map[string]any{nil, {}} {
		cfg, err := ioscope.ConfigFromMap(m)
		require.NoError(t, err)
		assert.Equal(t, ioscope.Config{Readline: true, Stdout: true}, cfg)
	}
}

func TestConfigFromMap_FullSelection(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want ioscope.Config
	}{
		{
			name: "both enabled",
			in:   map[string]any{"readline": true, "stdout": true},
			want: ioscope.Config{Readline: true, Stdout: true},
		},
		{
			name: "both disabled",
			in:   map[string]any{"readline": false, "stdout": false},
			want: ioscope.Config{},
		},
		{
			name: "readline only enabled",
			in:   map[string]any{"readline": true, "stdout": false},
			want: ioscope.Config{Readline: true},
		},
		{
			name: "stdout only enabled",
			in:   map[string]any{"readline": false, "stdout": true},
			want: ioscope.Config{Stdout: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ioscope.ConfigFromMap(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfigFromMap_UnknownEntity(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{
			name: "single unknown key",
			in:   map[string]any{"stderr": true},
		},
		{
			name: "unknown key next to valid entries",
			in:   map[string]any{"readline": true, "stdout": true, "stderr": true},
		},
		{
			name: "unknown key wins over a bad value elsewhere",
			in:   map[string]any{"stderr": true, "stdout": "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ioscope.ConfigFromMap(tt.in)
			var entityErr *ioscope.InvalidEntityError
			require.ErrorAs(t, err, &entityErr)
			assert.Equal(t, "stderr", entityErr.Entity)
		})
	}
}

func TestConfigFromMap_NonBooleanValue(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]any
		key   string
		value any
	}{
		{
			name:  "string instead of bool",
			in:    map[string]any{"readline": true, "stdout": "yes"},
			key:   "stdout",
			value: "yes",
		},
		{
			name:  "int instead of bool",
			in:    map[string]any{"readline": 1, "stdout": true},
			key:   "readline",
			value: 1,
		},
		{
			name:  "nil value",
			in:    map[string]any{"readline": nil, "stdout": true},
			key:   "readline",
			value: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ioscope.ConfigFromMap(tt.in)
			var valueErr *ioscope.InvalidValueError
			require.ErrorAs(t, err, &valueErr)
			assert.Equal(t, tt.key, valueErr.Entity)
			assert.Equal(t, tt.value, valueErr.Value)
		})
	}
}

func TestConfigFromMap_IncompleteSelection(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{name: "readline only", in: map[string]any{"readline": false}},
		{name: "stdout only", in: map[string]any{"stdout": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ioscope.ConfigFromMap(tt.in)
			assert.ErrorIs(t, err, ioscope.ErrIncompleteConfiguration)
		})
	}
}

func TestConfigFromMap_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{"readline": true, "stdout": false}
	_, err := ioscope.ConfigFromMap(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"readline": true, "stdout": false}, in)
}
