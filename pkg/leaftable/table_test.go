package leaftable_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/leafgen/pkg/leaftable"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

func miniEnum() symbols.Enumeration {
	return symbols.MustNew(map[string]int{
		"sym_identifier":       1,
		"sym_translation_unit": 2,
		"anon_sym_LF":          3,
		"sym_string_literal":   4,
	})
}

func render(t *testing.T, table *leaftable.Table) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, leaftable.Render(&buf, table, leaftable.RenderOptions{}))

	return buf.String()
}

func TestBuildMiniGrammar(t *testing.T) {
	t.Parallel()

	descs := []nodetypes.Descriptor{{Type: "translation_unit", Named: true, HasChildren: true}}

	table, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.NoError(t, err)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t,
		[]leaftable.Class{leaftable.Leaf, leaftable.Leaf, leaftable.Structural, leaftable.Structural, leaftable.Leaf},
		table.Values())
	assert.Equal(t, "1, 1, 0, 0, 1,\n", render(t, table))
}

func TestBuildWithoutOverrides(t *testing.T) {
	t.Parallel()

	descs := []nodetypes.Descriptor{{Type: "translation_unit", HasChildren: true}}

	table, err := leaftable.Build(miniEnum(), descs, nil)
	require.NoError(t, err)

	assert.Equal(t, "1, 1, 0, 1, 1,\n", render(t, table))
}

func TestBuildMismatch(t *testing.T) {
	t.Parallel()

	descs := []nodetypes.Descriptor{
		{Type: "translation_unit", HasChildren: true},
		{Type: "unknown_rule", HasFields: true},
	}

	table, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.Error(t, err)
	assert.Nil(t, table)
	require.ErrorIs(t, err, leaftable.ErrEnumerationMismatch)

	var mismatch *leaftable.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "sym_unknown_rule", mismatch.Key)
	assert.Equal(t, "unknown_rule", mismatch.Type)
	assert.Equal(t, leaftable.SourceNodeTypes, mismatch.Source)
	assert.Contains(t, err.Error(), "sym_unknown_rule")
}

func TestBuildIgnoresLeafDescriptorsMissingFromEnumeration(t *testing.T) {
	t.Parallel()

	// Only structural descriptors are looked up.
	descs := []nodetypes.Descriptor{{Type: "not_in_enum", Named: true}}

	table, err := leaftable.Build(miniEnum(), descs, nil)
	require.NoError(t, err)
	assert.Equal(t, "1, 1, 1, 1, 1,\n", render(t, table))
}

func TestBuildOverrideMismatch(t *testing.T) {
	t.Parallel()

	overrides := []leaftable.Override{{Symbol: "anon_sym_CR", Value: leaftable.Structural}}

	_, err := leaftable.Build(miniEnum(), nil, overrides)

	var mismatch *leaftable.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, leaftable.SourceOverride, mismatch.Source)
	assert.Equal(t, "anon_sym_CR", mismatch.Key)
	assert.Empty(t, mismatch.Type)
}

func TestOverridesTakePrecedence(t *testing.T) {
	t.Parallel()

	// The grammar gives string literals children; the override wins.
	descs := []nodetypes.Descriptor{
		{Type: "string_literal", HasChildren: true},
		{Type: "translation_unit", HasChildren: true},
	}

	table, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.NoError(t, err)

	assert.Equal(t, leaftable.Leaf, table.At(4))
	assert.Equal(t, leaftable.Structural, table.At(3))
}

func TestOverridesApplyInOrder(t *testing.T) {
	t.Parallel()

	overrides := []leaftable.Override{
		{Symbol: "sym_identifier", Value: leaftable.Structural},
		{Symbol: "sym_identifier", Value: leaftable.Leaf},
	}

	table, err := leaftable.Build(miniEnum(), nil, overrides)
	require.NoError(t, err)
	assert.Equal(t, leaftable.Leaf, table.At(1))
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	descs := []nodetypes.Descriptor{
		{Type: "translation_unit", HasChildren: true},
		{Type: "string_literal", HasChildren: true},
	}

	first, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.NoError(t, err)

	second, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.NoError(t, err)

	assert.Equal(t, render(t, first), render(t, second))
}

func TestAtOutOfRange(t *testing.T) {
	t.Parallel()

	table, err := leaftable.Build(miniEnum(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, leaftable.Leaf, table.At(-1))
	assert.Equal(t, leaftable.Leaf, table.At(99))
}

func TestValuesIsACopy(t *testing.T) {
	t.Parallel()

	table, err := leaftable.Build(miniEnum(), nil, nil)
	require.NoError(t, err)

	values := table.Values()
	values[1] = leaftable.Structural

	assert.Equal(t, leaftable.Leaf, table.At(1))
}

func TestStats(t *testing.T) {
	t.Parallel()

	descs := []nodetypes.Descriptor{{Type: "translation_unit", HasChildren: true}}

	table, err := leaftable.Build(miniEnum(), descs, leaftable.DefaultOverrides())
	require.NoError(t, err)

	assert.Equal(t, leaftable.Stats{
		Slots:      5,
		Leaf:       3,
		Structural: 2,
		Overridden: 2,
		Unassigned: 1,
	}, table.Stats())
}

func TestMismatchErrorIsComparable(t *testing.T) {
	t.Parallel()

	err := error(&leaftable.MismatchError{Key: "sym_x", Source: leaftable.SourceOverride})

	assert.True(t, errors.Is(err, leaftable.ErrEnumerationMismatch))
	assert.Equal(t, "symbol enumeration out of sync with grammar: override needs sym_x", err.Error())
}

func TestClassAndReasonStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "leaf", leaftable.Leaf.String())
	assert.Equal(t, "structural", leaftable.Structural.String())
	assert.Equal(t, "default", leaftable.ReasonDefault.String())
	assert.Equal(t, "structural", leaftable.ReasonStructural.String())
	assert.Equal(t, "override", leaftable.ReasonOverride.String())
}
