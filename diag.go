package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DiagnosticRenderer formats compile errors for humans: the message, the
// offending source line and a caret under the error column.
type DiagnosticRenderer struct {
	color bool

	errorStyle  lipgloss.Style
	sourceStyle lipgloss.Style
	caretStyle  lipgloss.Style
	gutterStyle lipgloss.Style
}

func NewDiagnosticRenderer(color bool) *DiagnosticRenderer {
	return &DiagnosticRenderer{
		color:       color,
		errorStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		sourceStyle: lipgloss.NewStyle(),
		caretStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		gutterStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (r *DiagnosticRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Render formats err found in source. Errors that are not compile errors
// are rendered as a single line.
func (r *DiagnosticRenderer) Render(filename string, source []byte, err error) string {
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		return r.style(r.errorStyle, "error: "+err.Error()) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(r.style(r.errorStyle, filename+":"+cerr.Error()))
	sb.WriteString("\n")

	line, ok := sourceLine(source, cerr.Pos.Row)
	if !ok {
		return sb.String()
	}
	gutter := fmt.Sprintf("%4d | ", cerr.Pos.Row)
	sb.WriteString(r.style(r.gutterStyle, gutter))
	sb.WriteString(r.style(r.sourceStyle, line))
	sb.WriteString("\n")

	var pad strings.Builder
	for i := 0; i < cerr.Pos.Column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	sb.WriteString(r.style(r.gutterStyle, strings.Repeat(" ", len(gutter)-2)+"| "))
	sb.WriteString(pad.String())
	sb.WriteString(r.style(r.caretStyle, "^"))
	sb.WriteString("\n")
	return sb.String()
}

// sourceLine returns the 1-based row of source without its line ending.
func sourceLine(source []byte, row int) (string, bool) {
	if row < 1 {
		return "", false
	}
	lines := strings.Split(string(source), "\n")
	if row > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[row-1], "\r"), true
}
