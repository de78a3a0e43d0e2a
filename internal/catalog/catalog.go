package catalog

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/sokinpui/lintref/model"
)

// Catalog maps file paths to their ordered edits. It is never mutated after
// Build returns it.
type Catalog struct {
	files []model.FileEdits
	index map[string]int
}

func newCatalog(files []model.FileEdits) *Catalog {
	c := &Catalog{
		files: files,
		index: make(map[string]int, len(files)),
	}
	for i, f := range files {
		c.index[f.Path] = i
	}
	return c
}

// Len returns the number of files in the catalog.
func (c *Catalog) Len() int {
	return len(c.files)
}

// EditCount returns the total number of edits across all files.
func (c *Catalog) EditCount() int {
	n := 0
	for _, f := range c.files {
		n += len(f.Edits)
	}
	return n
}

// Files returns the file paths in catalog order.
func (c *Catalog) Files() []string {
	paths := make([]string, len(c.files))
	for i, f := range c.files {
		paths[i] = f.Path
	}
	return paths
}

// Edits returns a copy of the edits for path.
func (c *Catalog) Edits(path string) ([]model.Edit, bool) {
	i, ok := c.index[path]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.files[i].Edits), true
}

// All yields every (path, edit) pair in catalog-then-record order.
// The sequence can be ranged over any number of times.
func (c *Catalog) All() iter.Seq2[string, model.Edit] {
	return func(yield func(string, model.Edit) bool) {
		for _, f := range c.files {
			for _, e := range f.Edits {
				if !yield(f.Path, e) {
					return
				}
			}
		}
	}
}

// ForEach calls visit for every (path, edit) pair in order.
func (c *Catalog) ForEach(visit func(path string, e model.Edit)) {
	for path, e := range c.All() {
		visit(path, e)
	}
}

// Filter returns the sub-catalog made of the given paths, in catalog order,
// along with the paths it does not know about. With no paths it returns c.
func (c *Catalog) Filter(paths ...string) (*Catalog, []string) {
	if len(paths) == 0 {
		return c, nil
	}

	wanted := make(map[string]struct{}, len(paths))
	var unknown []string
	for _, p := range paths {
		if _, ok := c.index[p]; !ok {
			if !slices.Contains(unknown, p) {
				unknown = append(unknown, p)
			}
			continue
		}
		wanted[p] = struct{}{}
	}

	var files []model.FileEdits
	for _, f := range c.files {
		if _, ok := wanted[f.Path]; ok {
			files = append(files, f)
		}
	}
	return newCatalog(files), unknown
}

// Validate checks every edit and file entry, reporting all violations at once.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.files) == 0 {
		errs = append(errs, errors.New("catalog is empty"))
	}
	for _, f := range c.files {
		if f.Path == "" {
			errs = append(errs, errors.New("file entry with empty path"))
		}
		if len(f.Edits) == 0 {
			errs = append(errs, fmt.Errorf("%s: no edits", f.Path))
		}
		for i, e := range f.Edits {
			if err := validateEdit(e); err != nil {
				errs = append(errs, fmt.Errorf("%s: edit %d: %w", f.Path, i+1, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateEdit(e model.Edit) error {
	switch {
	case e.Line < 1:
		return fmt.Errorf("line %d is not positive", e.Line)
	case e.Old == "":
		return errors.New("old text is empty")
	case e.New == "":
		return errors.New("new text is empty")
	}
	return nil
}
