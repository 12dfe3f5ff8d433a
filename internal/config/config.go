// Package config holds the netlist-writer option record. The naming
// engine never interprets these switches; they pass through to the
// writer backends unchanged.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options is the output configuration consumed by the netlist writers.
type Options struct {
	// OutputDirectory is where the emitted netlists land.
	OutputDirectory string `json:"output_directory,omitempty" yaml:"output_directory,omitempty"`

	// SupportIcarusSimulator keeps the emitted netlists compatible with
	// the icarus simulator.
	SupportIcarusSimulator bool `json:"support_icarus_simulator,omitempty" yaml:"support_icarus_simulator,omitempty"`

	// IncludeTiming emits timing annotations.
	IncludeTiming bool `json:"include_timing,omitempty" yaml:"include_timing,omitempty"`

	// IncludeSignalInit emits signal initialization blocks.
	IncludeSignalInit bool `json:"include_signal_init,omitempty" yaml:"include_signal_init,omitempty"`

	// ExplicitPortMapping instantiates modules with named port maps.
	ExplicitPortMapping bool `json:"explicit_port_mapping,omitempty" yaml:"explicit_port_mapping,omitempty"`

	// CompressRouting emits only unique routing modules.
	CompressRouting bool `json:"compress_routing,omitempty" yaml:"compress_routing,omitempty"`

	// VerboseOutput enables extra diagnostics on stderr.
	VerboseOutput bool `json:"verbose_output,omitempty" yaml:"verbose_output,omitempty"`
}

// DefaultOptions returns the writer defaults.
func DefaultOptions() *Options {
	return &Options{
		OutputDirectory: ".",
	}
}

// Load reads an option record from a JSON or YAML file, selected by
// extension. Missing fields fall back to defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}

	var opts Options
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parsing options file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parsing options file: %w", err)
		}
	}

	opts.applyDefaults()
	return &opts, nil
}

func (o *Options) applyDefaults() {
	if o.OutputDirectory == "" {
		o.OutputDirectory = "."
	}
}

// Save writes the option record as indented JSON.
func (o *Options) Save(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling options: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing options file: %w", err)
	}

	return nil
}
