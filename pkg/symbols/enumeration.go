// Package symbols holds tree-sitter symbol enumerations: the name to id mapping
// a generated parser.c assigns to every terminal, non-terminal, auxiliary and
// alias symbol of a grammar.
package symbols

import (
	"errors"
	"fmt"
	"sort"
)

// Symbol name prefixes used by tree-sitter in parser.c.
const (
	PrefixNamed     = "sym_"
	PrefixAnonymous = "anon_sym_"
	PrefixAuxiliary = "aux_sym_"
	PrefixAlias     = "alias_sym_"
)

// Sentinel errors for enumeration construction.
var (
	ErrEmptyEnumeration = errors.New("enumeration has no symbols")
	ErrDuplicateID      = errors.New("duplicate symbol id")
	ErrNegativeID       = errors.New("negative symbol id")
)

// Enumeration is an immutable mapping from symbol name to symbol id.
// Ids are unique and used directly as table indices.
type Enumeration struct {
	ids   map[string]int
	names map[int]string
	max   int
}

// New builds an Enumeration from a name to id map. The map is copied.
func New(values map[string]int) (Enumeration, error) {
	if len(values) == 0 {
		return Enumeration{}, ErrEmptyEnumeration
	}

	enum := Enumeration{
		ids:   make(map[string]int, len(values)),
		names: make(map[int]string, len(values)),
	}

	for name, id := range values {
		if id < 0 {
			return Enumeration{}, fmt.Errorf("%w: %s = %d", ErrNegativeID, name, id)
		}

		if other, dup := enum.names[id]; dup {
			first, second := sortedPair(name, other)

			return Enumeration{}, fmt.Errorf("%w: %s and %s share %d", ErrDuplicateID, first, second, id)
		}

		enum.ids[name] = id
		enum.names[id] = name

		if id > enum.max {
			enum.max = id
		}
	}

	return enum, nil
}

// MustNew is like New but panics on error. Use for compiled-in tables only.
func MustNew(values map[string]int) Enumeration {
	enum, err := New(values)
	if err != nil {
		panic(fmt.Sprintf("symbols: %v", err))
	}

	return enum
}

// Lookup returns the id for name.
func (e Enumeration) Lookup(name string) (int, bool) {
	id, ok := e.ids[name]

	return id, ok
}

// Name returns the symbol name assigned to id, if any.
func (e Enumeration) Name(id int) (string, bool) {
	name, ok := e.names[id]

	return name, ok
}

// Max returns the largest id.
func (e Enumeration) Max() int {
	return e.max
}

// Len returns the number of symbols.
func (e Enumeration) Len() int {
	return len(e.ids)
}

// Names returns all symbol names ordered by id.
func (e Enumeration) Names() []string {
	ids := make([]int, 0, len(e.names))
	for id := range e.names {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, e.names[id])
	}

	return names
}

// Map returns a copy of the underlying name to id mapping.
func (e Enumeration) Map() map[string]int {
	out := make(map[string]int, len(e.ids))
	for name, id := range e.ids {
		out[name] = id
	}

	return out
}

func sortedPair(a, b string) (first, second string) {
	if a < b {
		return a, b
	}

	return b, a
}
