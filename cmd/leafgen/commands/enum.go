package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

func newEnumCommand() *cobra.Command {
	var parserPath, pkg, varName, output string

	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Generate Go source for a symbol enumeration read from parser.c",
		Long: `Extract enum ts_symbol_identifiers from a tree-sitter generated parser.c
and print it as a gofmt'ed Go map literal. Used to refresh the
compiled-in enumeration after a grammar upgrade.

Example:
  leafgen enum --parser third_party/tree-sitter-c/src/parser.c -o pkg/symbols/c_symbols.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enum, err := loadParserC(parserPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			err = symbols.WriteGoSource(&buf, pkg, varName, filepath.ToSlash(parserPath), enum)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				if err != nil {
					return fmt.Errorf("write source: %w", err)
				}

				return nil
			}

			err = os.WriteFile(output, buf.Bytes(), outputFileMode)
			if err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&parserPath, "parser", "", `tree-sitter generated parser.c, "-" for stdin`)
	cmd.Flags().StringVar(&pkg, "package", "symbols", "package clause of the generated file")
	cmd.Flags().StringVar(&varName, "var", "cSymbols", "name of the generated map variable")
	cmd.Flags().StringVarP(&output, flagOutput, "o", "", "write the source to this file instead of stdout")

	_ = cmd.MarkFlagRequired("parser")

	return cmd
}
