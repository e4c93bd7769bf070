package gitlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v6/memfs"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo builds an in-memory repository with one commit per author, in
// the given order.
func newTestRepo(t *testing.T, authors ...string) *gogit.Repository {
	t.Helper()

	dotGitFS := memfs.New()
	worktreeFS := memfs.New()
	storer := filesystem.NewStorage(dotGitFS, cache.NewObjectLRUDefault())

	repo, err := gogit.Init(storer, gogit.WithWorkTree(worktreeFS))
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, author := range authors {
		name := fmt.Sprintf("file-%d.txt", i)
		f, err := worktreeFS.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(author + "\n"))
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = wt.Add(name)
		require.NoError(t, err)

		_, err = wt.Commit(fmt.Sprintf("commit %d", i), &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  author,
				Email: "dev@example.com",
				When:  time.Date(2024, 1, 1, 0, i, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)
	}
	return repo
}

func TestAuthorNamesFromRepo(t *testing.T) {
	repo := newTestRepo(t, "Alice", "Bob", "Alice")

	names, err := AuthorNamesFromRepo(repo)
	require.NoError(t, err)

	// The log walks from HEAD backwards, so newest first. Every commit
	// contributes one record; duplicates are intentional.
	assert.Equal(t, []string{"Alice", "Bob", "Alice"}, names)
}

func TestAuthorNamesFromRepoSingleCommit(t *testing.T) {
	repo := newTestRepo(t, "Cara")

	names, err := AuthorNamesFromRepo(repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cara"}, names)
}

func TestAuthorNamesFromRepoNoCommits(t *testing.T) {
	dotGitFS := memfs.New()
	storer := filesystem.NewStorage(dotGitFS, cache.NewObjectLRUDefault())
	repo, err := gogit.Init(storer, gogit.WithWorkTree(memfs.New()))
	require.NoError(t, err)

	_, err = AuthorNamesFromRepo(repo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEAD")
}

func TestAuthorNamesNotARepository(t *testing.T) {
	_, err := AuthorNames(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}
