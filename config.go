package ioscope

// Recognized I/O entity names. The set is fixed and closed.
const (
	EntityReadline = "readline"
	EntityStdout   = "stdout"
)

// Entities lists every recognized I/O entity name.
var Entities = []string{EntityReadline, EntityStdout}

// Config selects which I/O entities are isolated around a wrapped call.
// A Config obtained from DefaultConfig, ConfigFromMap or New is always
// fully populated; it never changes after validation.
type Config struct {
	Readline bool
	Stdout   bool
}

// DefaultConfig isolates every recognized entity.
func DefaultConfig() Config {
	return Config{Readline: true, Stdout: true}
}

// ConfigFromMap validates an entity→flag mapping and produces a complete
// configuration.
//
// An empty (or nil) map enables isolation for every entity. A non-empty map
// must name every recognized entity with a strict boolean value: unknown
// keys fail with *InvalidEntityError, non-boolean values fail with
// *InvalidValueError, and a missing recognized entity fails with
// ErrIncompleteConfiguration. Validation is pure; the input map is never
// modified.
func ConfigFromMap(m map[string]any) (Config, error) {
	if len(m) == 0 {
		return DefaultConfig(), nil
	}

	// Key check first, across the whole map, so an unknown entity is
	// reported even when another entry carries a bad value.
	for key := range m {
		if !recognizedEntity(key) {
			return Config{}, &InvalidEntityError{Entity: key}
		}
	}

	var cfg Config
	seen := make(map[string]bool, len(Entities))
	for key, value := range m {
		flag, ok := value.(bool)
		if !ok {
			return Config{}, &InvalidValueError{Entity: key, Value: value}
		}
		seen[key] = true
		switch key {
		case EntityReadline:
			cfg.Readline = flag
		case EntityStdout:
			cfg.Stdout = flag
		}
	}

	if len(seen) != len(Entities) {
		return Config{}, ErrIncompleteConfiguration
	}
	return cfg, nil
}

func recognizedEntity(name string) bool {
	for _, e := range Entities {
		if name == e {
			return true
		}
	}
	return false
}
