package leaftable

// Well-known tree-sitter-c symbols with a forced classification.
const (
	// SymbolNewline is the bare newline token terminating preprocessor lines.
	SymbolNewline = "anon_sym_LF"
	// SymbolStringLiteral is the string literal rule.
	SymbolStringLiteral = "sym_string_literal"
)

// Override forces the class of one symbol after the automatic pass.
type Override struct {
	Symbol string `json:"symbol" mapstructure:"symbol" yaml:"symbol"`
	Value  Class  `json:"value"  mapstructure:"value"  yaml:"value"`
}

// DefaultOverrides returns the overrides the C highlighter relies on.
//
// The newline token is a leaf in the grammar but ends preprocessor
// directives, so the consumer must descend past it. String literals have
// escape sequence children yet are drawn as one run of text.
func DefaultOverrides() []Override {
	return []Override{
		{Symbol: SymbolNewline, Value: Structural},
		{Symbol: SymbolStringLiteral, Value: Leaf},
	}
}
