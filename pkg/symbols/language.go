package symbols

import (
	"fmt"
	"strings"

	"github.com/alexaandru/go-sitter-forest/c"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// SymbolTable is the part of a compiled tree-sitter language needed to
// cross-check an enumeration. *sitter.Language satisfies it.
type SymbolTable interface {
	SymbolCount() uint32
	SymbolName(sitter.Symbol) string
}

// CLanguage returns the compiled tree-sitter C grammar.
func CLanguage() *sitter.Language {
	return sitter.NewLanguage(c.GetLanguage())
}

// CheckLanguage verifies that every named rule (sym_*) of enum sits at the
// same id in the compiled grammar. Anonymous, auxiliary and alias symbols have
// grammar-specific display names and are skipped.
func CheckLanguage(enum Enumeration, lang SymbolTable) []Drift {
	count := int(lang.SymbolCount())

	var drifts []Drift

	for name, id := range enum.ids {
		if !isNamedRule(name) {
			continue
		}

		want := strings.TrimPrefix(name, PrefixNamed)

		if id >= count {
			drifts = append(drifts, Drift{
				Kind: DriftOutOfRange, Symbol: name, ID: id,
				Want: want, Got: fmt.Sprintf("symbol count %d", count),
			})

			continue
		}

		got := lang.SymbolName(sitter.Symbol(id)) //nolint:gosec // id is bounded by SymbolCount.
		if got != want {
			drifts = append(drifts, Drift{Kind: DriftName, Symbol: name, ID: id, Want: want, Got: got})
		}
	}

	sortDrifts(drifts)

	return drifts
}

func isNamedRule(name string) bool {
	return strings.HasPrefix(name, PrefixNamed)
}
