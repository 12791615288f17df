package main

import (
	"io"
	"log/slog"
)

// Tracer observes the parser entering and leaving grammar rules.
type Tracer interface {
	Enter(rule string, tok Token)
	Leave(rule string)
	Error(rule string, err error)
}

type discardTracer struct{}

func (discardTracer) Enter(string, Token) {}
func (discardTracer) Leave(string)        {}
func (discardTracer) Error(string, error) {}

type slogTracer struct {
	logger *slog.Logger
	depth  int
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

// TraceLogger returns a Tracer that logs every rule at debug level.
func TraceLogger(logger *slog.Logger) Tracer {
	return &slogTracer{logger: logger}
}

func (t *slogTracer) Enter(rule string, tok Token) {
	t.depth++
	t.logger.Debug("enter rule", "rule", rule, "depth", t.depth, "token", tok.String())
}

func (t *slogTracer) Leave(rule string) {
	t.logger.Debug("leave rule", "rule", rule, "depth", t.depth)
	t.depth--
}

func (t *slogTracer) Error(rule string, err error) {
	t.logger.Debug("rule failed", "rule", rule, "depth", t.depth, "err", err)
}
