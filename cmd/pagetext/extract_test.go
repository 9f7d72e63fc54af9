package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagetext/pagetext"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["extract"], "extract subcommand should be registered")
	assert.True(t, names["pages"], "pages subcommand should be registered")
	assert.True(t, names["version"], "version subcommand should be registered")
}

func TestExtractCommand_FlagDefaults(t *testing.T) {
	flags := extractCmd.Flags()

	langs, err := flags.GetStringSlice("langs")
	require.NoError(t, err)
	assert.Equal(t, []string{"eng", "spa"}, langs)

	minText, err := flags.GetInt("min-text")
	require.NoError(t, err)
	assert.Equal(t, pagetext.DefaultMinTextLength, minText)

	scale, err := flags.GetFloat64("scale")
	require.NoError(t, err)
	assert.Equal(t, pagetext.DefaultOCRScale, scale)
}

func TestExtractCommand_MissingFile(t *testing.T) {
	err := runExtract(extractCmd, []string{"testdata/does-not-exist.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.pdf")
}

func TestPagesCommand_MissingFile(t *testing.T) {
	err := runPages(pagesCmd, []string{"testdata/does-not-exist.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.pdf")
}
