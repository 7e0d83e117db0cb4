package ioformat

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is an optional YAML document that adjusts the search parameters
// a stream already parsed into a StreamConfig, without touching the problem
// instance itself - e.g. "run this same instance for longer" without
// reassembling the whole input stream. There is no validation layer beyond
// the YAML decode: the fields here are few and already bounds-checked by
// tabu.Run.
type Overrides struct {
	Iterations *int  `yaml:"iterations"`
	TabuSize   *int  `yaml:"tabu_size"`
	Verbose    *bool `yaml:"verbose"`
}

// LoadOverrides reads and parses a YAML overrides file. A missing file is
// not an error: callers that don't pass one get a zero-value Overrides,
// whose Apply is a no-op.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Overrides{}, nil
	}
	if err != nil {
		return Overrides{}, &ConfigError{Field: "overrides file", Err: err}
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, &ConfigError{Field: "overrides yaml", Err: err}
	}
	return o, nil
}

// Apply overwrites cfg's fields with any overrides that were set.
func (o Overrides) Apply(cfg *StreamConfig) {
	if o.Iterations != nil {
		cfg.Iterations = *o.Iterations
	}
	if o.TabuSize != nil {
		cfg.TabuSize = *o.TabuSize
	}
	if o.Verbose != nil {
		cfg.Verbose = *o.Verbose
	}
}
