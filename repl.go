package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	replPrompt   = "glsl> "
	replContinue = "....> "
	historyFile  = ".glsltools_history"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse functions or expressions interactively",
		Long: `repl reads source one entry at a time. An entry containing '{' is parsed
as one or more function definitions and keeps prompting until its blocks are
closed; anything else is parsed as a single expression.
Type :quit or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runRepl(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runRepl(cfg *Config, stdout, stderr io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	diag := NewDiagnosticRenderer(cfg.Diagnostics.Color)
	for {
		src, err := readEntry(ln)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if strings.HasPrefix(src, ":") {
			if src == ":quit" || src == ":q" {
				return nil
			}
			fmt.Fprintln(stderr, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if err := evalLine(src, cfg, stdout); err != nil {
			fmt.Fprint(stderr, diag.Render("<repl>", []byte(src), err))
		}
	}
}

// readEntry prompts until the text read so far no longer ends inside an
// open block.
func readEntry(ln *liner.State) (string, error) {
	var b strings.Builder
	prompt := replPrompt
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), nil
		}
		prompt = replContinue
	}
}

// incomplete reports whether src is a unit that fails only because the
// input ran out.
func incomplete(src string) bool {
	if !strings.Contains(src, "{") {
		return false
	}
	_, err := NewParser([]byte(src), NewTypeRegistry()).ParseUnit()
	var cerr *CompileError
	return errors.As(err, &cerr) && cerr.Token.Kind == EOF
}

// evalLine parses and prints a single REPL entry. Each entry starts from a
// fresh scope tree.
func evalLine(input string, cfg *Config, w io.Writer) error {
	types := NewTypeRegistry()

	if strings.Contains(input, "{") {
		unit, err := NewParser([]byte(input), types).ParseUnit()
		if err != nil {
			return err
		}
		if cfg.Fold.Enabled {
			unit, _ = FoldUnit(unit)
		}
		return writeUnit(w, unit, cfg)
	}

	expr, err := NewParser([]byte(input), types).ParseExpression()
	if err != nil {
		return err
	}
	if cfg.Fold.Enabled {
		expr = NewFolder(types).Fold(expr)
	}
	if cfg.Printer.Format == FormatSExpr {
		_, err = fmt.Fprintln(w, ToSExpr(expr))
	} else {
		_, err = fmt.Fprintln(w, PrintString(expr))
	}
	return err
}
