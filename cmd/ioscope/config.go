package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// demoFile is the on-disk demo configuration.
//
//	prompt: "ioscope> "
//	isolate:
//	  readline: true
//	  stdout: true
//
// The isolate mapping is passed to the isolator untouched, so entity and
// value validation stay in one place (ioscope.ConfigFromMap).
type demoFile struct {
	Prompt  string         `mapstructure:"prompt"`
	Isolate map[string]any `mapstructure:"isolate"`
}

func loadDemoFile(path string) (*demoFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	var df demoFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &df,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return &df, nil
}
