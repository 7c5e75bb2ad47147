package nodetypes_test

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "node-types.json")
	writeFile(t, path, []byte(sampleNodeTypes))

	src, err := nodetypes.ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, src.Label)

	descs, err := src.Descriptors()
	require.NoError(t, err)
	assert.Len(t, descs, 5)
}

func TestReadFileLZ4(t *testing.T) {
	t.Parallel()

	var compressed bytes.Buffer

	zw := lz4.NewWriter(&compressed)
	_, err := zw.Write([]byte(sampleNodeTypes))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "node-types.json.lz4")
	writeFile(t, path, compressed.Bytes())

	src, err := nodetypes.ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleNodeTypes, string(src.Data))
}

func TestReadFileStdin(t *testing.T) {
	t.Parallel()

	src, err := nodetypes.ReadFile(nodetypes.StdinPath, strings.NewReader(`[{"type":"x","fields":{}}]`))
	require.NoError(t, err)
	assert.Equal(t, "stdin", src.Label)

	descs, err := src.Descriptors()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.True(t, descs[0].Structural())
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	_, err := nodetypes.ReadFile("  ", nil)
	require.ErrorIs(t, err, nodetypes.ErrEmptyPath)

	_, err = nodetypes.ReadFile("a\x00b", nil)
	require.ErrorIs(t, err, nodetypes.ErrPathContainsNUL)

	_, err = nodetypes.ReadFile(t.TempDir(), nil)
	require.ErrorIs(t, err, nodetypes.ErrDirectoryPath)

	_, err = nodetypes.ReadFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
}

func TestDescriptorsLabelsErrors(t *testing.T) {
	t.Parallel()

	_, err := nodetypes.Source{Label: "broken.json", Data: []byte("{")}.Descriptors()
	require.ErrorIs(t, err, nodetypes.ErrMalformed)
	assert.Contains(t, err.Error(), "broken.json")
}

// The table core imports this package, so it must build without cgo.
func TestPackageDoesNotLinkLibgit2(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()

	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}

		parsed, parseErr := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		require.NoError(t, parseErr)

		for _, imp := range parsed.Imports {
			assert.NotContains(t, imp.Path.Value, "gitlib", file)
			assert.NotContains(t, imp.Path.Value, "git2go", file)
		}
	}
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	src, err := nodetypes.NewSource("HEAD:node-types.json", "node-types.json", []byte(sampleNodeTypes))
	require.NoError(t, err)
	assert.Equal(t, sampleNodeTypes, string(src.Data))

	_, err = nodetypes.NewSource("HEAD:broken.lz4", "broken.lz4", []byte("not lz4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEAD:broken.lz4")
}
