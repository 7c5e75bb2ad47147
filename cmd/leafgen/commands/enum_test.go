package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

func TestEnum_RoundTripsEmbeddedEnumeration(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)
	parser := ws.write(t, "parser.c", parserCFor(symbols.C()))

	res := runCLI(t, "", "enum", "--parser", parser, "--package", "grammar", "--var", "symbolIDs")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "// Code generated by leafgen enum from ")
	assert.Contains(t, res.stdout, "package grammar\n")
	assert.Contains(t, res.stdout, "var symbolIDs = map[string]int{")

	reparsed, err := symbols.ParseParserC(parserCFor(symbols.C()))
	require.NoError(t, err)
	assert.Empty(t, symbols.Compare(symbols.C(), reparsed))
}

func TestEnum_OutputFile(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)
	parser := ws.write(t, "parser.c", parserCFor(symbols.C()))
	out := filepath.Join(ws.dir, "c_symbols.go")

	res := runCLI(t, "", "enum", "--parser", parser, "-o", out)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package symbols\n")
	assert.Contains(t, string(data), "var cSymbols = map[string]int{")
}

func TestEnum_RequiresParser(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "enum")
	require.Error(t, res.err)
}
