package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glsltools.toml")
	be.Err(t, os.WriteFile(path, []byte(content), 0o644), nil)
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	be.Equal(t, cfg.Printer.Indent, 1)
	be.Equal(t, cfg.Printer.Format, FormatText)
	be.Equal(t, cfg.Fold.Enabled, false)
	be.Equal(t, cfg.Log.Level, "warn")
	be.Err(t, cfg.Validate(), nil)

	level, err := cfg.SlogLevel()
	be.Err(t, err, nil)
	be.Equal(t, level, slog.LevelWarn)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[printer]
indent = 2
format = "sexpr"

[fold]
enabled = true

[log]
level = "debug"

[diagnostics]
color = true
`)

	cfg, err := LoadConfig(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Printer.Indent, 2)
	be.Equal(t, cfg.Printer.Format, FormatSExpr)
	be.True(t, cfg.Fold.Enabled)
	be.True(t, cfg.Diagnostics.Color)

	level, err := cfg.SlogLevel()
	be.Err(t, err, nil)
	be.Equal(t, level, slog.LevelDebug)
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[fold]\nenabled = true\n"))
	be.Err(t, err, nil)
	be.True(t, cfg.Fold.Enabled)
	be.Equal(t, cfg.Printer.Indent, 1)
	be.Equal(t, cfg.Printer.Format, FormatText)
	be.Equal(t, cfg.Log.Level, "warn")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[printer]\nwidth = 3\n", "unknown config keys: printer.width"},
		{"indent too large", "[printer]\nindent = 20\n", "printer.indent must be between 1 and 16, got 20"},
		{"negative indent", "[printer]\nindent = -1\n", "printer.indent must be between 1 and 16"},
		{"bad format", "[printer]\nformat = \"json\"\n", `got "json"`},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"malformed", "[printer\n", "failed to parse config"},
		{"wrong type", "[fold]\nenabled = \"yes\"\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			be.Err(t, err, tt.want)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	be.Err(t, err, "config file not found")
}
