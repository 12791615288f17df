package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	tracer := TraceLogger(NewLogger(&buf, slog.LevelDebug))

	_, err := NewParser([]byte("main() { return 1; }"), NewTypeRegistry(), WithTracer(tracer)).ParseUnit()
	be.Err(t, err, nil)

	out := buf.String()
	be.True(t, strings.Contains(out, `msg="enter rule" rule=unit depth=1`))
	be.True(t, strings.Contains(out, `msg="enter rule" rule=binary depth=5`))
	be.True(t, strings.Contains(out, `msg="leave rule" rule=unit depth=1`))
	be.True(t, strings.Contains(out, `token="IDENT(\"main\")@1:1"`))
}

func TestTraceLoggerReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	tracer := TraceLogger(NewLogger(&buf, slog.LevelDebug))

	_, err := NewParser([]byte("main() {"), NewTypeRegistry(), WithTracer(tracer)).ParseUnit()
	be.Err(t, err, ErrSyntax)
	be.True(t, strings.Contains(buf.String(), `msg="rule failed" rule=function`))
}

func TestTraceLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	tracer := TraceLogger(NewLogger(&buf, slog.LevelInfo))

	_, err := NewParser([]byte("main() {}"), NewTypeRegistry(), WithTracer(tracer)).ParseUnit()
	be.Err(t, err, nil)
	be.Equal(t, buf.String(), "")
}
