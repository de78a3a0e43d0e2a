package lintref_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/lintref/cli"
	"github.com/sokinpui/lintref/internal/ui"
	"github.com/sokinpui/lintref/lintref"
)

const advisory = "Linting errors will be fixed by running eslint --fix and manual code changes.\n" +
	"This script is for reference only. Please use the Edit tool to make actual changes.\n"

func TestExecute_NoArguments(t *testing.T) {
	cfg, err := cli.ParseFlags(nil)
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := lintref.New(cfg).Execute(&out)
	require.NoError(t, err)

	assert.Equal(t, advisory, out.String())
	assert.Equal(t, 26, summary.Files)
	assert.Equal(t, 45, summary.Edits)
}

func TestExecute_NilConfig(t *testing.T) {
	var out bytes.Buffer
	_, err := lintref.New(nil).Execute(&out)
	require.NoError(t, err)
	assert.Equal(t, advisory, out.String())
}

// captureUI redirects diagnostics and listings for the duration of a test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := ui.Output
	ui.Output = &buf
	t.Cleanup(func() { ui.Output = prev })
	return &buf
}

func TestExecute_ListFiltered(t *testing.T) {
	stderr := captureUI(t)

	cfg := &cli.Config{List: true, Files: []string{"src/pages/SitemapPage.tsx", "src/pages/Missing.tsx"}}

	var out bytes.Buffer
	summary, err := lintref.New(cfg).Execute(&out)
	require.NoError(t, err)

	assert.Equal(t, advisory, out.String())
	assert.Contains(t, stderr.String(), "src/pages/SitemapPage.tsx (1 edit(s))\n"+
		"  L96 [substitute] map((_, _index) => -> map(() =>\n")
	assert.Contains(t, stderr.String(), "src/pages/Missing.tsx")
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, []string{"src/pages/Missing.tsx"}, summary.Unknown)
}

func TestExecute_ListNoMatches(t *testing.T) {
	captureUI(t)

	var out bytes.Buffer
	summary, err := lintref.New(&cli.Config{List: true, Files: []string{"x.tsx"}}).Execute(&out)
	require.NoError(t, err)
	assert.Equal(t, advisory, out.String())
	assert.Equal(t, "No matching files.", summary.Message)
}

func TestExecute_ListAllKeepsStdoutToAdvisory(t *testing.T) {
	stderr := captureUI(t)

	var out bytes.Buffer
	_, err := lintref.New(&cli.Config{List: true}).Execute(&out)
	require.NoError(t, err)

	assert.Equal(t, advisory, out.String())
	assert.Equal(t, 26+45, strings.Count(stderr.String(), "\n"))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestExecute_WriteFailure(t *testing.T) {
	_, err := lintref.New(nil).Execute(brokenWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestFixes(t *testing.T) {
	fixes := lintref.Fixes()
	require.Len(t, fixes, 26)
	assert.Equal(t, "src/components/CrRecentlyPlayed.tsx", fixes[0].Path)
	assert.Equal(t, 138, fixes[0].Edits[0].Line)
	assert.Equal(t, lintref.Fixes(), fixes)
}

func TestAdvise(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, lintref.Advise(&out))
	assert.Equal(t, advisory, out.String())
}
