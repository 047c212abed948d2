// Package config loads Algomy's optional startup configuration: a set of
// variable bindings established before the REPL/script begins, the same
// idea ivy's config file formalizes for a line-oriented calculator.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the `--config` file's shape: a flat map of symbol name to
// the expression text it should be bound to at startup.
type Config struct {
	Assignments map[string]string `yaml:"assignments"`
}

// Load reads and parses a YAML config file. An empty path is not an
// error: it yields a Config with no assignments.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}
