package report

import (
	"fmt"
	"io"
)

// Printed on every run, in this order.
const (
	advisoryFix       = "Linting errors will be fixed by running eslint --fix and manual code changes."
	advisoryReference = "This script is for reference only. Please use the Edit tool to make actual changes."
)

// Report writes the advisory lines to w.
func Report(w io.Writer) error {
	for _, line := range []string{advisoryFix, advisoryReference} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write advisory: %w", err)
		}
	}
	return nil
}
