// Package config loads the server configuration from a YAML file and
// validates it against an embedded CUE schema before unmarshalling.
// Validation happens at startup so a bad config fails fast instead of
// surfacing mid-request.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

// schema constrains the config file shape. All fields are optional;
// omitted fields keep their defaults.
const schema = `
#Config: {
	port?:        int & >=1 & <=65535
	size?:        int & >0
	pattern?:     "vertical" | "diagonal_1" | "diagonal_2" | "zigzag"
	legacy_keys?: bool
}
`

// Config holds the server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`

	// Size is the initial lattice edge length. Clamped to the engine's
	// [5, 200] range by the caller.
	Size int `yaml:"size"`

	// Pattern is the initial seed pattern.
	Pattern string `yaml:"pattern"`

	// LegacyKeys switches cycle points to the historical q/r wire names.
	LegacyKeys bool `yaml:"legacy_keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:    3000,
		Size:    10,
		Pattern: "vertical",
	}
}

// Load reads and validates a config file. An empty path returns Default.
//
// The file is first validated against the CUE schema (type and enum errors
// carry CUE's positional diagnostics), then unmarshalled over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks raw YAML bytes against the config schema.
func Validate(data []byte) error {
	ctx := cuecontext.New()
	sv := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err := sv.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	return cueyaml.Validate(data, sv)
}
