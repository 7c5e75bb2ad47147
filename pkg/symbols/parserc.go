package symbols

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DefaultParserPath is where tree-sitter-c keeps its generated parser,
// relative to the root of the repository vendoring it.
const DefaultParserPath = "third_party/tree-sitter-c/src/parser.c"

// ErrNoSymbolEnum is returned when parser.c has no ts_symbol_identifiers enum.
var ErrNoSymbolEnum = errors.New("enum ts_symbol_identifiers not found")

var (
	symbolEnumRe  = regexp.MustCompile(`(?s)enum\s+ts_symbol_identifiers\s*\{([^}]*)\}`)
	enumEntryRe   = regexp.MustCompile(`(\w+)\s*=\s*(\d+)`)
	builtinSymEnd = "ts_builtin_sym_end"
)

// ParseParserC extracts the symbol enumeration from a tree-sitter generated
// parser.c. Only the ts_symbol_identifiers block is read:
//
//	enum ts_symbol_identifiers {
//	  sym_identifier = 1,
//	  anon_sym_LF = 3,
//	};
//
// ts_builtin_sym_end is implicit in parser.c and is not part of the result.
func ParseParserC(source string) (Enumeration, error) {
	match := symbolEnumRe.FindStringSubmatch(source)
	if match == nil {
		return Enumeration{}, ErrNoSymbolEnum
	}

	values := make(map[string]int)

	for _, entry := range enumEntryRe.FindAllStringSubmatch(match[1], -1) {
		if entry[1] == builtinSymEnd {
			continue
		}

		id, err := strconv.Atoi(entry[2])
		if err != nil {
			return Enumeration{}, fmt.Errorf("parse %s: %w", entry[1], err)
		}

		values[entry[1]] = id
	}

	enum, err := New(values)
	if err != nil {
		return Enumeration{}, fmt.Errorf("parser.c enumeration: %w", err)
	}

	return enum, nil
}
