// Package config loads the law suite run by the fpelaws command.
//
// A suite is a YAML file:
//
//	log-level: debug
//	color: auto
//	tolerance: 1e-9
//	inputs:
//	  ints: [-2, -1, 0, 1, 2]
//	  floats: [0.1, 0.5]
//	  strings: ["", "a"]
//	laws: [composition-associativity, monad-left-identity]
//	functions: [inc, double]
//
// Fields left out of the file get their default value.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KasperOmsK/fpe/internal/logging"
	"github.com/KasperOmsK/fpe/laws"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultTolerance is the float tolerance used when none is configured.
const DefaultTolerance = 1e-9

// Config is a law suite. Private fields are computed by Load.
type Config struct {
	sourceFile string

	LogLevel string `yaml:"log-level"`

	// Color is one of auto, always or never. auto colours the report when
	// stdout is a terminal.
	Color string `yaml:"color"`

	// Tolerance is the absolute or relative tolerance of float comparisons.
	// Zero compares floats exactly.
	Tolerance float64 `yaml:"tolerance"`

	Inputs Inputs `yaml:"inputs"`

	// Laws names the laws to check. Empty means every law.
	Laws []string `yaml:"laws"`

	// Functions names the catalog functions the laws are checked on. Empty
	// means the whole catalog.
	Functions []string `yaml:"functions"`
}

// Inputs are the sample values the laws are checked on.
type Inputs struct {
	Ints    []int     `yaml:"ints"`
	Floats  []float64 `yaml:"floats"`
	Strings []string  `yaml:"strings"`
}

// Default returns the suite used when no file is given: every law on the
// whole catalog.
func Default() *Config {
	c := &Config{Tolerance: DefaultTolerance}
	c.setDefaults()
	return c
}

// Load reads and validates the suite in filename.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	cfg.sourceFile = filename
	return cfg, nil
}

// Parse decodes and validates a suite. Unknown fields are rejected.
func Parse(b []byte) (*Config, error) {
	cfg := &Config{Tolerance: DefaultTolerance}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = logging.InfoLevel.String()
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if len(c.Inputs.Ints) == 0 {
		c.Inputs.Ints = []int{-3, -2, -1, 0, 1, 2, 3}
	}
	if len(c.Inputs.Floats) == 0 {
		c.Inputs.Floats = []float64{-1.5, 0, 0.1, 0.25, 2}
	}
	if len(c.Inputs.Strings) == 0 {
		c.Inputs.Strings = []string{"", "a", "bc"}
	}
	if len(c.Laws) == 0 {
		c.Laws = laws.Names()
	}
}

// Validate checks the log level, the colour mode, the tolerance and the
// law names.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance)
	}
	known := laws.Names()
	for _, law := range c.Laws {
		if !slices.Contains(known, law) {
			return fmt.Errorf("unknown law %q", law)
		}
	}
	return nil
}

// Level returns the configured log level. The configuration must be valid.
func (c *Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

// SourceFile returns the file the configuration was loaded from, or "" for
// the default configuration.
func (c *Config) SourceFile() string { return c.sourceFile }

// Checks reports whether law is part of the suite.
func (c *Config) Checks(law string) bool {
	return slices.Contains(c.Laws, law)
}
