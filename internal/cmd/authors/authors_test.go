package authors

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/schmitthub/refgen/internal/cmdutil"
	"github.com/schmitthub/refgen/internal/config"
	"github.com/schmitthub/refgen/internal/gitlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory(repo, target string) (*cmdutil.Factory, *bytes.Buffer) {
	errOut := &bytes.Buffer{}
	f := &cmdutil.Factory{
		Out:    io.Discard,
		ErrOut: errOut,
		Config: func() (*config.Config, error) {
			return &config.Config{
				Authors: config.AuthorsConfig{
					StartMarker: "// REFGEN_AUTHORS_START",
					EndMarker:   "// REFGEN_AUTHORS_END",
					Target:      target,
					Repo:        repo,
				},
			}, nil
		},
	}
	return f, errOut
}

// newTestRepoOnDisk creates a real repository with one commit per author,
// in the given order.
func newTestRepoOnDisk(t *testing.T, authors ...string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, author := range authors {
		name := fmt.Sprintf("file-%d.txt", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(author+"\n"), 0o644))

		_, err = wt.Add(name)
		require.NoError(t, err)

		_, err = wt.Commit("commit by "+author, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  author,
				Email: "dev@example.com",
				When:  time.Date(2024, 1, 1, 0, i, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)
	}
	return dir
}

func TestAuthorsRewritesTarget(t *testing.T) {
	repoDir := newTestRepoOnDisk(t, "Alice", "Bob", "Alice")
	target := filepath.Join(t.TempDir(), "README.asciidoc")
	doc := "== Authors\n" +
		"// REFGEN_AUTHORS_START\n" +
		"* Stale Author\n" +
		"// REFGEN_AUTHORS_END\n"
	require.NoError(t, os.WriteFile(target, []byte(doc), 0o644))

	f, errOut := testFactory(repoDir, target)
	cmd := NewCmdAuthors(f)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	want := "== Authors\n" +
		"// REFGEN_AUTHORS_START\n" +
		"* Bob\n" +
		"* Alice\n" +
		"// REFGEN_AUTHORS_END\n"
	assert.Equal(t, want, string(got))

	assert.Contains(t, errOut.String(), "Updated authors in "+target+" (2 authors)")
}

func TestAuthorsFlagsOverrideConfig(t *testing.T) {
	repoDir := newTestRepoOnDisk(t, "Cara")
	target := filepath.Join(t.TempDir(), "CONTRIBUTORS.asciidoc")
	doc := "// REFGEN_AUTHORS_START\n// REFGEN_AUTHORS_END\n"
	require.NoError(t, os.WriteFile(target, []byte(doc), 0o644))

	// Config points at nonexistent paths; the flags must win.
	f, _ := testFactory("/nonexistent/repo", "/nonexistent/target")
	cmd := NewCmdAuthors(f)
	cmd.SetArgs([]string{"--repo", repoDir, "--target", target})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "// REFGEN_AUTHORS_START\n* Cara\n// REFGEN_AUTHORS_END\n", string(got))
}

func TestAuthorsNotARepository(t *testing.T) {
	target := filepath.Join(t.TempDir(), "README.asciidoc")
	require.NoError(t, os.WriteFile(target, []byte("// REFGEN_AUTHORS_START\n// REFGEN_AUTHORS_END\n"), 0o644))

	f, _ := testFactory(t.TempDir(), target)
	cmd := NewCmdAuthors(f)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, gitlog.ErrNotRepository)

	// The target is untouched on failure.
	got, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "// REFGEN_AUTHORS_START\n// REFGEN_AUTHORS_END\n", string(got))
}
