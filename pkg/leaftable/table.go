// Package leaftable builds the leaf classification table of a tree-sitter
// grammar: for every symbol id, 1 when consumers should treat the node as an
// opaque leaf and 0 when they should descend into it.
package leaftable

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

// ErrEnumerationMismatch is returned when a symbol required by the grammar
// description or an override is missing from the enumeration. The
// enumeration is stale and must be regenerated.
var ErrEnumerationMismatch = errors.New("symbol enumeration out of sync with grammar")

// Mismatch sources.
const (
	SourceNodeTypes = "node-types"
	SourceOverride  = "override"
)

// MismatchError names the symbol that broke the build.
type MismatchError struct {
	// Key is the enumeration name that was looked up.
	Key string
	// Type is the node type from node-types.json; empty for overrides.
	Type string
	// Source is SourceNodeTypes or SourceOverride.
	Source string
}

func (e *MismatchError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %s %q needs %s", ErrEnumerationMismatch, e.Source, e.Type, e.Key)
	}

	return fmt.Sprintf("%s: %s needs %s", ErrEnumerationMismatch, e.Source, e.Key)
}

// Unwrap makes errors.Is(err, ErrEnumerationMismatch) hold.
func (e *MismatchError) Unwrap() error {
	return ErrEnumerationMismatch
}

// Class is the value stored for a symbol.
type Class uint8

// Classes.
const (
	Structural Class = 0
	Leaf       Class = 1
)

func (c Class) String() string {
	if c == Structural {
		return "structural"
	}

	return "leaf"
}

// Reason records which step decided a slot.
type Reason uint8

// Reasons, in the order the build applies them.
const (
	ReasonDefault Reason = iota
	ReasonStructural
	ReasonOverride
)

func (r Reason) String() string {
	switch r {
	case ReasonStructural:
		return "structural"
	case ReasonOverride:
		return "override"
	default:
		return "default"
	}
}

// Table is a frozen classification table indexed by symbol id.
type Table struct {
	enum    symbols.Enumeration
	values  []Class
	reasons []Reason
}

// Build computes the table for enum from the grammar descriptors, then applies
// overrides in order. It fails on the first symbol missing from enum.
func Build(enum symbols.Enumeration, descriptors []nodetypes.Descriptor, overrides []Override) (*Table, error) {
	size := enum.Max() + 1

	table := &Table{
		enum:    enum,
		values:  make([]Class, size),
		reasons: make([]Reason, size),
	}

	for idx := range table.values {
		table.values[idx] = Leaf
	}

	for _, desc := range descriptors {
		if !desc.Structural() {
			continue
		}

		key := desc.Key()

		id, ok := enum.Lookup(key)
		if !ok {
			return nil, &MismatchError{Key: key, Type: desc.Type, Source: SourceNodeTypes}
		}

		table.values[id] = Structural
		table.reasons[id] = ReasonStructural
	}

	for _, override := range overrides {
		id, ok := enum.Lookup(override.Symbol)
		if !ok {
			return nil, &MismatchError{Key: override.Symbol, Source: SourceOverride}
		}

		table.values[id] = override.Value
		table.reasons[id] = ReasonOverride
	}

	return table, nil
}

// Len returns the number of slots, one more than the largest id.
func (t *Table) Len() int {
	return len(t.values)
}

// At returns the class of id. Ids outside the table are leaves.
func (t *Table) At(id int) Class {
	if id < 0 || id >= len(t.values) {
		return Leaf
	}

	return t.values[id]
}

// Values returns a copy of the slots.
func (t *Table) Values() []Class {
	out := make([]Class, len(t.values))
	copy(out, t.values)

	return out
}

// Stats summarizes a table.
type Stats struct {
	Slots      int `json:"slots"      yaml:"slots"`
	Leaf       int `json:"leaf"       yaml:"leaf"`
	Structural int `json:"structural" yaml:"structural"`
	Overridden int `json:"overridden" yaml:"overridden"`
	Unassigned int `json:"unassigned" yaml:"unassigned"`
}

// Stats counts slots by class and reason. Unassigned counts ids with no
// symbol name, such as index 0.
func (t *Table) Stats() Stats {
	stats := Stats{Slots: len(t.values)}

	for id, value := range t.values {
		if value == Structural {
			stats.Structural++
		} else {
			stats.Leaf++
		}

		if t.reasons[id] == ReasonOverride {
			stats.Overridden++
		}

		if _, ok := t.enum.Name(id); !ok {
			stats.Unassigned++
		}
	}

	return stats
}
