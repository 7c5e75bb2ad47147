package gitsource_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes/gitsource"
)

const sampleNodeTypes = `[{"type":"translation_unit","named":true,"children":{}}]`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func commitAll(t *testing.T, repo *git2go.Repository) {
	t.Helper()

	index, err := repo.Index()
	require.NoError(t, err)

	defer index.Free()

	require.NoError(t, index.AddAll([]string{"*"}, git2go.IndexAddDefault, nil))
	require.NoError(t, index.Write())

	treeID, err := index.WriteTree()
	require.NoError(t, err)

	tree, err := repo.LookupTree(treeID)
	require.NoError(t, err)

	defer tree.Free()

	sig := &git2go.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()}

	_, err = repo.CreateCommit("HEAD", sig, sig, "vendor grammar", tree)
	require.NoError(t, err)
}

func TestReadAtAndDefaultLocation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	repo, err := git2go.InitRepository(dir, false)
	require.NoError(t, err)

	defer repo.Free()

	writeFile(t, filepath.Join(dir, filepath.FromSlash(nodetypes.DefaultPath)), []byte(sampleNodeTypes))
	commitAll(t, repo)

	// Uncommitted edits must not be visible at HEAD.
	writeFile(t, filepath.Join(dir, filepath.FromSlash(nodetypes.DefaultPath)), []byte(`[]`))

	src, err := gitsource.ReadAt(dir, "HEAD", nodetypes.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "HEAD:"+nodetypes.DefaultPath, src.Label)
	assert.Equal(t, sampleNodeTypes, string(src.Data))

	sub := filepath.Join(dir, "third_party")
	loc := gitsource.DefaultLocation(sub)

	want, err := filepath.EvalSymlinks(filepath.Join(dir, filepath.FromSlash(nodetypes.DefaultPath)))
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(loc)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultLocationOutsideRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, nodetypes.DefaultPath), gitsource.DefaultLocation(dir))
}

func TestReadAtDecompressesLZ4(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	repo, err := git2go.InitRepository(dir, false)
	require.NoError(t, err)

	defer repo.Free()

	path := filepath.Join(dir, "grammar", "node-types.json.lz4")

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	out, err := os.Create(path)
	require.NoError(t, err)

	zw := lz4.NewWriter(out)
	_, err = zw.Write([]byte(sampleNodeTypes))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	commitAll(t, repo)

	src, err := gitsource.ReadAt(dir, "HEAD", filepath.Join("grammar", "node-types.json.lz4"))
	require.NoError(t, err)
	assert.Equal(t, "HEAD:grammar/node-types.json.lz4", src.Label)
	assert.Equal(t, sampleNodeTypes, string(src.Data))
}

func TestLocate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "src", "parser.c"), gitsource.Locate(dir, "src/parser.c"))
}
