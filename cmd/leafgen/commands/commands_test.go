package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/cmd/leafgen/commands"
	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

// cNodeTypes uses real tree-sitter-c rule names so it builds against the
// embedded enumeration.
const cNodeTypes = `[
  {
    "type": "translation_unit",
    "named": true,
    "children": {"multiple": true, "required": false, "types": []}
  },
  {
    "type": "preproc_include",
    "named": true,
    "fields": {"path": {"multiple": false, "required": true, "types": []}}
  },
  {
    "type": "string_literal",
    "named": true,
    "children": {"multiple": true, "required": false, "types": []}
  },
  {"type": "identifier", "named": true},
  {"type": "\n", "named": false}
]`

const unknownNodeTypes = `[
  {"type": "identifier", "named": true},
  {"type": "lambda_expression", "named": true, "fields": {}}
]`

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// workspace holds an empty config file and the C sample node types.
type workspace struct {
	dir       string
	config    string
	nodeTypes string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()

	dir := t.TempDir()
	ws := workspace{
		dir:       dir,
		config:    filepath.Join(dir, ".leafgen.yaml"),
		nodeTypes: filepath.Join(dir, "node-types.json"),
	}

	ws.write(t, ".leafgen.yaml", "")
	ws.write(t, "node-types.json", cNodeTypes)

	return ws
}

func (ws workspace) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(ws.dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// args prefixes the flags every test needs.
func (ws workspace) args(extra ...string) []string {
	return append([]string{"--config", ws.config, "--node-types", ws.nodeTypes}, extra...)
}

// tableValues returns the rendered values in order.
func tableValues(t *testing.T, rendered string) []string {
	t.Helper()

	return strings.Fields(strings.ReplaceAll(rendered, ",", " "))
}

func symbolID(t *testing.T, name string) int {
	t.Helper()

	id, ok := symbols.C().Lookup(name)
	require.True(t, ok, name)

	return id
}
