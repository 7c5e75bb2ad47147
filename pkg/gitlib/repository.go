// Package gitlib wraps the few libgit2 operations leafgen needs: locating the
// repository that vendors a grammar and reading files at a revision.
package gitlib

import (
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Sentinel errors.
var (
	ErrBareRepository = errors.New("repository has no work tree")
	ErrNotABlob       = errors.New("path is not a file")
)

// Repository wraps a libgit2 repository.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens a git repository at the given path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// DiscoverRepository opens the repository containing start, walking up the
// directory tree the way git itself does.
func DiscoverRepository(start string) (*Repository, error) {
	gitDir, err := git2go.Discover(start, false, nil)
	if err != nil {
		return nil, fmt.Errorf("discover repository from %s: %w", start, err)
	}

	return OpenRepository(gitDir)
}

// DiscoverWorkdir returns the work tree root of the repository containing start.
func DiscoverWorkdir(start string) (string, error) {
	repo, err := DiscoverRepository(start)
	if err != nil {
		return "", err
	}
	defer repo.Free()

	workdir := repo.Workdir()
	if workdir == "" {
		return "", fmt.Errorf("%w: %s", ErrBareRepository, repo.Path())
	}

	return workdir, nil
}

// Path returns the repository path.
func (r *Repository) Path() string {
	return r.path
}

// Workdir returns the work tree root, or "" for bare repositories.
func (r *Repository) Workdir() string {
	return r.repo.Workdir()
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// ReadFileAt returns the contents of path (slash separated, relative to the
// repository root) as recorded in revision rev, e.g. "HEAD" or "v0.21.0".
func (r *Repository) ReadFileAt(rev, path string) ([]byte, error) {
	tree, err := r.lookupTree(rev)
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	entry, err := tree.EntryByPath(path)
	if err != nil {
		return nil, fmt.Errorf("entry %s at %s: %w", path, rev, err)
	}

	if entry.Type != git2go.ObjectBlob {
		return nil, fmt.Errorf("%w: %s at %s", ErrNotABlob, path, rev)
	}

	blob, err := r.repo.LookupBlob(entry.Id)
	if err != nil {
		return nil, fmt.Errorf("lookup blob: %w", err)
	}
	defer blob.Free()

	return blob.Contents(), nil
}

func (r *Repository) lookupTree(rev string) (*git2go.Tree, error) {
	obj, err := r.repo.RevparseSingle(rev)
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	defer obj.Free()

	peeled, err := obj.Peel(git2go.ObjectTree)
	if err != nil {
		return nil, fmt.Errorf("peel %q to tree: %w", rev, err)
	}
	defer peeled.Free()

	tree, err := peeled.AsTree()
	if err != nil {
		return nil, fmt.Errorf("tree of %q: %w", rev, err)
	}

	return tree, nil
}
