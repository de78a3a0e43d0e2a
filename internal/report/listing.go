package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/lintref/internal/catalog"
	"github.com/sokinpui/lintref/internal/ui"
	"github.com/sokinpui/lintref/model"
)

// --- Styles ---
var (
	fileStyle       = ui.Renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	lineStyle       = ui.Renderer.NewStyle().Faint(true)
	substituteStyle = ui.Renderer.NewStyle().Foreground(lipgloss.Color("78"))
	commentOutStyle = ui.Renderer.NewStyle().Foreground(lipgloss.Color("214"))
)

// Listing writes the catalog to w, one header per file followed by its edits.
func Listing(w io.Writer, c *catalog.Catalog, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	for _, path := range c.Files() {
		edits, _ := c.Edits(path)
		b.WriteString(render(fileStyle, fmt.Sprintf("%s (%d edit(s))", path, len(edits))))
		b.WriteString("\n")
		for _, e := range edits {
			kindStyle := substituteStyle
			if e.Kind() == model.KindCommentOut {
				kindStyle = commentOutStyle
			}
			fmt.Fprintf(&b, "  %s %s %s -> %s\n",
				render(lineStyle, fmt.Sprintf("L%d", e.Line)),
				render(kindStyle, "["+string(e.Kind())+"]"),
				escape(e.Old),
				escape(e.New),
			)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return nil
}

// escape keeps multi-line replacements on a single listing line.
func escape(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
