package model

import "strings"

// Kind classifies what an edit does to its line.
type Kind string

const (
	KindSubstitute Kind = "substitute"
	KindCommentOut Kind = "comment-out"
)

// Edit represents a single proposed substitution on one line of a file.
type Edit struct {
	Line int
	Old  string
	New  string
}

// Kind reports whether the edit comments the old text out or replaces it.
func (e Edit) Kind() Kind {
	if strings.HasSuffix(e.New, "// "+e.Old) {
		return KindCommentOut
	}
	return KindSubstitute
}

// FileEdits holds the ordered edits for one file.
type FileEdits struct {
	Path  string
	Edits []Edit
}

// Summary holds the results of a run for display.
type Summary struct {
	Files   int
	Edits   int
	Unknown []string
	Message string
}
