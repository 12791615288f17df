package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errCompile marks failures whose diagnostic was already written to stderr.
var errCompile = errors.New("compilation failed")

type options struct {
	configPath string
	fold       bool
	format     string
	indent     int
	verbose    bool
	color      bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "glsltools <file>",
		Short: "Parse a shader source file and print its syntax tree",
		Long: `glsltools parses a shader-like source file and prints the parsed
functions to standard output. The first error stops parsing; it is reported
on standard error and the command exits with status 1.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return compileFile(args[0], cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file")
	flags.BoolVar(&opts.fold, "fold", false, "fold constant expressions before printing")
	flags.StringVar(&opts.format, "format", FormatText, "output format: text, sexpr or yaml")
	flags.IntVar(&opts.indent, "indent", 1, "spaces per indent level")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace the parser on stderr")
	flags.BoolVar(&opts.color, "color", false, "colorize diagnostics")

	cmd.AddCommand(newReplCommand(opts))
	return cmd
}

// resolveConfig loads the config file, if any, and applies flags that were
// set explicitly on the command line.
func resolveConfig(cmd *cobra.Command, opts *options) (*Config, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fold") {
		cfg.Fold.Enabled = opts.fold
	}
	if flags.Changed("format") {
		cfg.Printer.Format = opts.format
	}
	if flags.Changed("indent") {
		cfg.Printer.Indent = opts.indent
	}
	if flags.Changed("color") {
		cfg.Diagnostics.Color = opts.color
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newCompileLogger(cfg *Config, stderr io.Writer) (*slog.Logger, []ParserOption) {
	level, _ := cfg.SlogLevel()
	logger := NewLogger(stderr, level)
	var popts []ParserOption
	if level <= slog.LevelDebug {
		popts = append(popts, WithTracer(TraceLogger(logger)))
	}
	return logger, popts
}

// compileFile parses path and writes the result to stdout.
func compileFile(path string, cfg *Config, stdout, stderr io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	logger, popts := newCompileLogger(cfg, stderr)
	logger.Info("parsing", "file", path, "bytes", len(source))

	types := NewTypeRegistry()
	unit, err := NewParser(source, types, popts...).ParseUnit()
	if err != nil {
		fmt.Fprint(stderr, NewDiagnosticRenderer(cfg.Diagnostics.Color).Render(path, source, err))
		return errCompile
	}
	logger.Info("parsed", "functions", len(unit.Functions), "scopes", unit.Scopes.Len())

	if cfg.Fold.Enabled {
		var unfolded []error
		unit, unfolded = FoldUnit(unit)
		for _, reason := range unfolded {
			logger.Info("expression not folded", "reason", reason)
		}
	}
	return writeUnit(stdout, unit, cfg)
}

func writeUnit(w io.Writer, unit *CodeUnit, cfg *Config) error {
	switch cfg.Printer.Format {
	case FormatSExpr:
		_, err := fmt.Fprintln(w, UnitToSExpr(unit))
		return err
	case FormatYAML:
		return DumpYAML(w, unit)
	default:
		return NewPrinter(w, cfg.Printer.Indent).PrintUnit(unit)
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errCompile) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
