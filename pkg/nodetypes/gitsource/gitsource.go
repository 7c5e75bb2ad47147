// Package gitsource reads grammar files out of the git repository that
// vendors them. It is kept apart from nodetypes so the table core builds
// without cgo and libgit2.
package gitsource

import (
	"path/filepath"

	"github.com/Sumatoshi-tech/leafgen/pkg/gitlib"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
)

// ReadAt loads node-types.json from revision rev of the git repository
// containing repoPath. file is relative to the work tree root; a .lz4 suffix
// is decompressed.
func ReadAt(repoPath, rev, file string) (nodetypes.Source, error) {
	repo, err := gitlib.DiscoverRepository(repoPath)
	if err != nil {
		return nodetypes.Source{}, err
	}
	defer repo.Free()

	slashed := filepath.ToSlash(file)

	data, err := repo.ReadFileAt(rev, slashed)
	if err != nil {
		return nodetypes.Source{}, err
	}

	return nodetypes.NewSource(rev+":"+slashed, slashed, data)
}

// Locate anchors rel at the work tree enclosing dir, or at dir itself when
// dir is not inside a git repository.
func Locate(dir, rel string) string {
	root, err := gitlib.DiscoverWorkdir(dir)
	if err != nil {
		return filepath.Join(dir, rel)
	}

	return filepath.Join(root, rel)
}

// DefaultLocation is Locate for nodetypes.DefaultPath.
func DefaultLocation(dir string) string {
	return Locate(dir, nodetypes.DefaultPath)
}
