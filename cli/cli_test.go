package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{"no arguments", nil, Config{Files: []string{}}},
		{"list", []string{"--list"}, Config{List: true, Files: []string{}}},
		{"short list without color", []string{"-l", "--no-color"}, Config{List: true, NoColor: true, Files: []string{}}},
		{
			"file implies list",
			[]string{"-f", "src/pages/AboutPage.tsx", "--file=src/pages/SitemapPage.tsx"},
			Config{List: true, Files: []string{"src/pages/AboutPage.tsx", "src/pages/SitemapPage.tsx"}},
		},
		{
			"comma separated files",
			[]string{"--file", "a.tsx,b.tsx"},
			Config{List: true, Files: []string{"a.tsx", "b.tsx"}},
		},
		{"help", []string{"--help"}, Config{Help: true, Files: []string{}}},
		{"short help", []string{"-h"}, Config{Help: true, Files: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseFlags_ErrorsStillYieldConfig(t *testing.T) {
	cfg, err := ParseFlags([]string{"--bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
	require.NotNil(t, cfg)
	assert.Equal(t, Config{Files: []string{}}, *cfg)

	cfg, err = ParseFlags([]string{"extra"})
	assert.EqualError(t, err, "ignoring unexpected argument: extra")
	require.NotNil(t, cfg)
	assert.False(t, cfg.List)

	cfg, err = ParseFlags([]string{"-l", "extra"})
	require.Error(t, err)
	assert.True(t, cfg.List)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: lintref [flags]")
	assert.Contains(t, out, "--list")
	assert.Contains(t, out, "--file")
	assert.Contains(t, out, "--no-color")
}
