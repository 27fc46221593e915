package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/foragehq/forage/cmd/forage"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"scrape", "posts", "export"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ScrapeFlagDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"scrape", "123456789"})
	require.NoError(t, err)

	assert.Equal(t, "123456789", cli.Scrape.Group)
	assert.Equal(t, 7, cli.Scrape.Days)
	assert.Equal(t, 2.0, cli.Scrape.Delay)
	assert.Equal(t, 0.5, cli.Scrape.DelayVariance)
	assert.Equal(t, "auto", cli.Scrape.Layout)
	assert.False(t, cli.Scrape.Headed)
}

func TestCLI_ScrapeRejectsUnknownLayout(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"scrape", "123", "--layout", "mobile"})
	assert.Error(t, err)
}
