package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	List    bool
	Files   []string
	NoColor bool
	Help    bool
}

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lintref", pflag.ContinueOnError)
	// Errors are returned to the caller, which reports them through ui.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// Define flags
	fs.BoolVarP(&cfg.List, "list", "l", false, "Print the catalog of fixes to stderr before the advisory.")
	fs.StringSliceVarP(&cfg.Files, "file", "f", []string{}, "Only list fixes for the given file path(s). Implies --list.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable styling of the listing.")
	return fs
}

// ParseFlags defines and parses command-line flags using pflag.
// args excludes the program name. The returned Config is never nil: on a
// parse error it is the zero configuration and the run proceeds as if no
// arguments were given.
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return &Config{Help: true, Files: []string{}}, nil
		}
		return &Config{Files: []string{}}, fmt.Errorf("ignoring arguments: %w", err)
	}

	if len(cfg.Files) > 0 {
		cfg.List = true
	}

	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("ignoring unexpected argument: %s", fs.Arg(0))
	}

	return cfg, nil
}

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&Config{})
	fmt.Fprintln(w, "Usage: lintref [flags]")
	fmt.Fprintln(w, "\nPrint the reference catalog of manual lint fixes. No files are modified.")
	fmt.Fprintln(w, "\nExample: lintref -f src/pages/ListenPage.tsx")
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, fs.FlagUsages())
}
