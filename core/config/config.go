// File: config.go
// Title: Tool Configuration Management
// Description: Implements loading and validation of cmake-format configuration
//              from TOML and YAML files with automatic format detection.
//              Includes user-declared additional command grammars.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds all cmake-format settings
type Config struct {
	// LineWidth is the target column for the layout engine
	LineWidth int `toml:"line_width" yaml:"line_width"`

	// TabSize is the indentation width used when re-rendering
	TabSize int `toml:"tab_size" yaml:"tab_size"`

	// EnableSort allows the layout engine to reorder sortable groups
	EnableSort bool `toml:"enable_sort" yaml:"enable_sort"`

	// LogLevel is the minimum level for diagnostics (trace..fatal)
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFormat selects the diagnostic output format (console, text, json)
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// AdditionalCommands declares grammars for commands unknown to the
	// built-in registry, keyed by command name
	AdditionalCommands map[string]CommandSpec `toml:"additional_commands" yaml:"additional_commands"`
}

// CommandSpec declares the grammar of a user-defined command. Arity strings
// are a decimal count, "+" (one or more) or "*" (zero or more).
type CommandSpec struct {
	// Pargs is the arity of the command's bare positional arguments
	Pargs string `toml:"pargs" yaml:"pargs"`

	// Flags lists zero-argument keywords
	Flags []string `toml:"flags" yaml:"flags"`

	// Kwargs maps keyword names to the arity of their payload
	Kwargs map[string]string `toml:"kwargs" yaml:"kwargs"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LineWidth:  80,
		TabSize:    2,
		EnableSort: true,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Load loads configuration from a file, auto-detecting the format
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", filePath, err)
		}
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", filePath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %d", c.LineWidth)
	}
	if c.TabSize <= 0 {
		return fmt.Errorf("tab_size must be positive, got %d", c.TabSize)
	}

	for name, spec := range c.AdditionalCommands {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("additional command name cannot be empty")
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("additional command %q: %w", name, err)
		}
	}

	return nil
}

// Validate checks a command spec for well-formed arity strings
func (s CommandSpec) Validate() error {
	if s.Pargs != "" {
		if err := validateArity(s.Pargs); err != nil {
			return fmt.Errorf("pargs: %w", err)
		}
	}
	for kw, arity := range s.Kwargs {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keyword name cannot be empty")
		}
		if err := validateArity(arity); err != nil {
			return fmt.Errorf("kwarg %s: %w", kw, err)
		}
	}
	return nil
}

// validateArity checks an arity string: a non-negative decimal, "+" or "*"
func validateArity(arity string) error {
	switch arity {
	case "+", "*":
		return nil
	}
	n, err := strconv.Atoi(arity)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid arity %q (want a count, \"+\" or \"*\")", arity)
	}
	return nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	default:
		return FormatTOML
	}
}
