package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output receives all diagnostics and listings. Standard output is reserved
// for the advisory.
var Output io.Writer = os.Stderr

// Renderer picks its color profile from stderr, where Output points.
var Renderer = lipgloss.NewRenderer(os.Stderr)

var (
	HeaderStyle  = Renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	InfoStyle    = Renderer.NewStyle().Foreground(lipgloss.Color("39"))
	WarningStyle = Renderer.NewStyle().Foreground(lipgloss.Color("214"))
	ErrorStyle   = Renderer.NewStyle().Foreground(lipgloss.Color("197"))
)

func emit(style lipgloss.Style, format string, a ...interface{}) {
	fmt.Fprintln(Output, style.Render(fmt.Sprintf(format, a...)))
}

func Header(format string, a ...interface{}) {
	emit(HeaderStyle, format, a...)
}

func Info(format string, a ...interface{}) {
	emit(InfoStyle, format, a...)
}

func Warning(format string, a ...interface{}) {
	emit(WarningStyle, format, a...)
}

func Error(format string, a ...interface{}) {
	emit(ErrorStyle, format, a...)
}
