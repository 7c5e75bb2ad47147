package symbols_test

import (
	"testing"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	want := symbols.MustNew(map[string]int{"sym_a": 1, "sym_b": 2, "sym_c": 3})
	got := symbols.MustNew(map[string]int{"sym_a": 1, "sym_b": 4, "sym_d": 5})

	drifts := symbols.Compare(want, got)
	require.Len(t, drifts, 3)

	assert.Equal(t, symbols.DriftID, drifts[0].Kind)
	assert.Equal(t, "sym_b", drifts[0].Symbol)
	assert.Equal(t, "4", drifts[0].Got)

	assert.Equal(t, symbols.DriftMissing, drifts[1].Kind)
	assert.Equal(t, "sym_c", drifts[1].Symbol)

	assert.Equal(t, symbols.DriftExtra, drifts[2].Kind)
	assert.Equal(t, "sym_d", drifts[2].Symbol)
}

func TestCompareIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, symbols.Compare(symbols.C(), symbols.C()))
}

type fakeLanguage []string

func (f fakeLanguage) SymbolCount() uint32 { return uint32(len(f)) }

func (f fakeLanguage) SymbolName(s sitter.Symbol) string { return f[int(s)] }

func TestCheckLanguage(t *testing.T) {
	t.Parallel()

	enum := symbols.MustNew(map[string]int{
		"sym_identifier":       1,
		"anon_sym_LF":          2,
		"sym_translation_unit": 3,
		"sym__expression":      4,
		"sym_string_literal":   9,
	})
	lang := fakeLanguage{"end", "identifier", "\n", "translation_unit_v2", "_expression"}

	drifts := symbols.CheckLanguage(enum, lang)
	require.Len(t, drifts, 2)

	assert.Equal(t, symbols.DriftName, drifts[0].Kind)
	assert.Equal(t, "sym_translation_unit", drifts[0].Symbol)
	assert.Equal(t, "translation_unit", drifts[0].Want)
	assert.Equal(t, "translation_unit_v2", drifts[0].Got)

	assert.Equal(t, symbols.DriftOutOfRange, drifts[1].Kind)
	assert.Equal(t, "sym_string_literal", drifts[1].Symbol)
}

func TestCLanguage(t *testing.T) {
	t.Parallel()

	lang := symbols.CLanguage()
	require.NotNil(t, lang)

	assert.Positive(t, lang.SymbolCount())
	assert.Equal(t, "identifier", lang.SymbolName(sitter.Symbol(1)))
}
