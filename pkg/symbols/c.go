package symbols

import "sync"

var cEnumeration = sync.OnceValue(func() Enumeration {
	return MustNew(cSymbols)
})

// C returns the symbol enumeration of the tree-sitter C grammar.
// Regenerate c_symbols.go with `leafgen enum` when the grammar is updated.
func C() Enumeration {
	return cEnumeration()
}
