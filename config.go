package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats accepted by printer.format and --format.
const (
	FormatText  = "text"
	FormatSExpr = "sexpr"
	FormatYAML  = "yaml"
)

// Config holds the settings of the glsltools command.
type Config struct {
	Printer     PrinterConfig     `toml:"printer"`
	Fold        FoldConfig        `toml:"fold"`
	Log         LogConfig         `toml:"log"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// PrinterConfig controls how the parsed unit is written to stdout.
type PrinterConfig struct {
	Indent int    `toml:"indent"`
	Format string `toml:"format"`
}

// FoldConfig enables constant folding before output.
type FoldConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig sets the level of the stderr logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// DiagnosticsConfig controls error rendering.
type DiagnosticsConfig struct {
	Color bool `toml:"color"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Printer.Indent == 0 {
		c.Printer.Indent = 1
	}
	if c.Printer.Format == "" {
		c.Printer.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// LoadConfig reads a TOML file. Keys missing from the file keep their
// defaults; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Printer.Indent < 1 || c.Printer.Indent > 16 {
		return fmt.Errorf("printer.indent must be between 1 and 16, got %d", c.Printer.Indent)
	}
	switch c.Printer.Format {
	case FormatText, FormatSExpr, FormatYAML:
	default:
		return fmt.Errorf("printer.format must be one of %s, %s, %s; got %q", FormatText, FormatSExpr, FormatYAML, c.Printer.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses log.level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
