// Package gitlog extracts contribution records from a git repository's
// commit history.
//
// This is a Tier 1 (Leaf) package in the refgen architecture:
//   - It imports ONLY stdlib and go-git packages
//   - It does NOT import any internal packages
package gitlog

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// ErrNotRepository is returned when the path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// AuthorNames returns the author name of every commit reachable from HEAD,
// newest first. The path may be anywhere inside the repository; the
// repository root is discovered by walking up the directory tree.
func AuthorNames(path string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return AuthorNamesFromRepo(repo)
}

// AuthorNamesFromRepo collects author names from an already-open repository.
// This is the seam used by tests with in-memory storage.
func AuthorNamesFromRepo(repo *gogit.Repository) ([]string, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(c *object.Commit) error {
		names = append(names, c.Author.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commit log: %w", err)
	}
	return names, nil
}
