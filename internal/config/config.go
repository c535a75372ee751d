// Package config loads the optional arith YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML document.
type Config struct {
	Bench Bench `yaml:"bench"`
}

// Bench holds defaults for `arith bench`. Flags set on the command line
// override these.
type Bench struct {
	Op       string        `yaml:"op"`
	Impl     string        `yaml:"impl"`
	Workers  int           `yaml:"workers"`
	Duration time.Duration `yaml:"duration"`
	Progress time.Duration `yaml:"progress"`
	A        int32         `yaml:"a"`
	B        int32         `yaml:"b"`
	N        uint32        `yaml:"n"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bench: Bench{
			Op:       "add",
			Impl:     "go",
			Workers:  runtime.NumCPU(),
			Duration: 10 * time.Second,
			Progress: 5 * time.Second,
			A:        2,
			B:        3,
			N:        20,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
