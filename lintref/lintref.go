package lintref

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"

	"github.com/sokinpui/lintref/cli"
	"github.com/sokinpui/lintref/internal/catalog"
	"github.com/sokinpui/lintref/internal/report"
	"github.com/sokinpui/lintref/internal/ui"
	"github.com/sokinpui/lintref/model"
)

// App orchestrates a single run of the tool.
type App struct {
	cfg     *cli.Config
	catalog *catalog.Catalog
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	if cfg == nil {
		cfg = &cli.Config{}
	}
	return &App{
		cfg:     cfg,
		catalog: catalog.Build(),
	}
}

// Execute writes the optional listing to ui.Output and then the advisory to
// stdout. Stdout never carries anything but the advisory.
func (a *App) Execute(stdout io.Writer) (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	summary = model.Summary{
		Files: a.catalog.Len(),
		Edits: a.catalog.EditCount(),
	}

	if a.cfg.List {
		summary, err = a.list()
		if err != nil {
			return summary, err
		}
	}

	if err := report.Report(stdout); err != nil {
		return summary, err
	}
	return summary, nil
}

// list prints the catalog, restricted to the configured files if any.
func (a *App) list() (model.Summary, error) {
	sub, unknown := a.catalog.Filter(a.cfg.Files...)
	for _, path := range unknown {
		ui.Warning("No fixes recorded for %s, ignoring.", path)
	}

	summary := model.Summary{
		Files:   sub.Len(),
		Edits:   sub.EditCount(),
		Unknown: unknown,
	}
	if sub.Len() == 0 {
		summary.Message = "No matching files."
		return summary, nil
	}

	if err := report.Listing(ui.Output, sub, a.styled(ui.Output)); err != nil {
		return summary, err
	}
	return summary, nil
}

func (a *App) styled(w io.Writer) bool {
	if a.cfg.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
