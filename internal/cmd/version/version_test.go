package version

import (
	"bytes"
	"testing"

	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "refgen version 1.2.3 (abc123)\n", Format("1.2.3", "abc123"))
	assert.Equal(t, "refgen version 1.2.3\n", Format("1.2.3", ""))

	// A leading v is stripped for display.
	assert.Equal(t, "refgen version 1.2.3 (abc123)\n", Format("v1.2.3", "abc123"))
}

func TestNewCmdVersion(t *testing.T) {
	out := &bytes.Buffer{}
	f := &cmdutil.Factory{Out: out}

	root := &cobra.Command{
		Use: "refgen",
		Annotations: map[string]string{
			"versionInfo": Format("1.2.3", "abc123"),
		},
	}
	root.AddCommand(NewCmdVersion(f))
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "refgen version 1.2.3 (abc123)\n", out.String())
}
