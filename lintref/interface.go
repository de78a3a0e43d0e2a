package lintref

import (
	"io"

	"github.com/sokinpui/lintref/internal/catalog"
	"github.com/sokinpui/lintref/internal/report"
	"github.com/sokinpui/lintref/model"
)

// Fixes returns the catalog of manual lint fixes, file by file, in catalog order.
func Fixes() []model.FileEdits {
	c := catalog.Build()
	out := make([]model.FileEdits, 0, c.Len())
	for _, path := range c.Files() {
		edits, _ := c.Edits(path)
		out = append(out, model.FileEdits{Path: path, Edits: edits})
	}
	return out
}

// Advise writes the two advisory lines to w.
func Advise(w io.Writer) error {
	return report.Report(w)
}
