package manual

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory() (*cmdutil.Factory, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	f := &cmdutil.Factory{
		Out:    out,
		ErrOut: errOut,
		Config: func() (*config.Config, error) {
			return &config.Config{
				Doc: config.DocConfig{
					Title:         "Test manual",
					Maintainer:    "Max Power <max@example.com>",
					Homepage:      "https://example.com/",
					CommandPrefix: ":",
				},
			}, nil
		},
	}
	return f, out, errOut
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const simpleManifest = `
commands:
  - name: open
    doc: Open a URL.
settings:
  - name: general
    description: General settings.
    options:
      - name: auto-save
        description: Whether to save.
`

func TestManualRequiresManifest(t *testing.T) {
	f, _, _ := testFactory()
	cmd := NewCmdManual(f)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)

	var flagErr *cmdutil.FlagError
	assert.True(t, errors.As(err, &flagErr))
}

func TestManualWritesToStdout(t *testing.T) {
	f, out, _ := testFactory()
	manifest := writeManifest(t, simpleManifest)

	cmd := NewCmdManual(f)
	cmd.SetArgs([]string{"--manifest", manifest})
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(out.String(), "= Test manual\n"))
	assert.Contains(t, out.String(), "[[cmd-open]]")
	assert.Contains(t, out.String(), "[[setting-general-auto-save]]")
}

func TestManualWritesToFile(t *testing.T) {
	f, out, errOut := testFactory()
	manifest := writeManifest(t, simpleManifest)
	output := filepath.Join(t.TempDir(), "manual.asciidoc")

	cmd := NewCmdManual(f)
	cmd.SetArgs([]string{"-m", manifest, "-o", output})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "= Test manual\n"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Generated reference manual in "+output)
}

func TestManualOverrides(t *testing.T) {
	f, out, _ := testFactory()
	manifest := writeManifest(t, simpleManifest)

	cmd := NewCmdManual(f)
	cmd.SetArgs([]string{
		"-m", manifest,
		"--title", "Other manual",
		"--maintainer", "Other <o@example.com>",
	})
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(out.String(),
		"= Other manual\nOther <o@example.com>\n"))
	// The homepage keeps its configured value.
	assert.Contains(t, out.String(), ":homepage: https://example.com/\n")
}

func TestManualReportsSkippedCommands(t *testing.T) {
	f, out, errOut := testFactory()
	manifest := writeManifest(t, `
commands:
  - name: good
    doc: Works fine.
  - name: broken
    doc: |-
      Broken.

      Args:
          missing a colon
`)
	output := filepath.Join(t.TempDir(), "manual.asciidoc")

	cmd := NewCmdManual(f)
	cmd.SetArgs([]string{"-m", manifest, "-o", output})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "Skipped 1 command(s) with malformed docstrings")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[cmd-good]]")
	assert.NotContains(t, string(data), "[[cmd-broken]]")
	assert.Empty(t, out.String())
}

func TestManualMissingManifestFile(t *testing.T) {
	f, _, _ := testFactory()

	cmd := NewCmdManual(f)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"-m", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
