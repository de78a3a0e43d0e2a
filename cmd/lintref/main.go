package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/sokinpui/lintref/cli"
	"github.com/sokinpui/lintref/internal/ui"
	"github.com/sokinpui/lintref/lintref"
)

func main() {
	// Arguments never change the advisory or the exit status.
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		ui.Warning("%v", err)
	}
	if cfg.Help {
		cli.PrintUsage(ui.Output)
	}

	if cfg.NoColor {
		ui.Renderer.SetColorProfile(termenv.Ascii)
	}

	summary, err := lintref.New(cfg).Execute(os.Stdout)
	if err != nil {
		reportFailure(err)
		os.Exit(1)
	}

	if cfg.List {
		if summary.Message != "" {
			ui.Warning("%s", summary.Message)
		}
		ui.Info("%d file(s), %d edit(s) listed.", summary.Files, summary.Edits)
	}
}

// reportFailure prints err, and its stack trace when it carries one.
func reportFailure(err error) {
	ui.Error("Error: %v", err)
	var detailed *lintref.DetailedError
	if errors.As(err, &detailed) {
		ui.Header("\n--- Stack Trace ---")
		fmt.Fprintf(ui.Output, "%s\n", detailed.Stack)
	}
}
