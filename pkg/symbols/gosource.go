package symbols

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
)

// WriteGoSource writes a gofmt'ed Go file declaring varName as a map literal
// holding enum, ordered by id. source names the input in the generated header.
func WriteGoSource(w io.Writer, pkg, varName, source string, enum Enumeration) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by leafgen enum from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s mirrors enum ts_symbol_identifiers of the tree-sitter C grammar.\n", varName)
	fmt.Fprintf(&buf, "var %s = map[string]int{\n", varName)

	for _, name := range enum.Names() {
		id, _ := enum.Lookup(name)
		fmt.Fprintf(&buf, "\t%q: %d,\n", name, id)
	}

	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	_, err = w.Write(formatted)
	if err != nil {
		return fmt.Errorf("write generated source: %w", err)
	}

	return nil
}
