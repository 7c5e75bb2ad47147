package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes/gitsource"
	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

// ErrEnumerationDrift is returned when the embedded enumeration disagrees
// with parser.c or, when asked, the compiled grammar.
var ErrEnumerationDrift = errors.New("embedded symbol enumeration has drifted")

type syncResult struct {
	Source string          `json:"source" yaml:"source"`
	Drifts []symbols.Drift `json:"drifts" yaml:"drifts"`
}

func newSyncCommand(flags *globalFlags) *cobra.Command {
	var (
		parserPath string
		grammar    bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Check the embedded symbol enumeration against parser.c",
		Long: `Compare the compiled-in tree-sitter-c symbol enumeration with the
ts_symbol_identifiers enum of a generated parser.c. Without --parser the
vendored ` + symbols.DefaultParserPath + ` of the repository
enclosing --repo is read.

--grammar also compares against the tree-sitter C grammar linked into this
binary. That grammar comes from the go-sitter-forest/c module pinned in
go.mod, which tracks a newer tree-sitter-c than the enumeration; expect
drift unless the two versions match.

Examples:
  leafgen sync
  leafgen sync --parser - < parser.c
  leafgen sync --grammar --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if parserPath == "" && !grammar {
				parserPath = gitsource.Locate(flags.repo, symbols.DefaultParserPath)
			}

			return runSync(cmd, flags, parserPath, grammar, format)
		},
	}

	cmd.Flags().StringVar(&parserPath, "parser", "", `tree-sitter generated parser.c, "-" for stdin`)
	cmd.Flags().BoolVar(&grammar, "grammar", false, "check against the compiled tree-sitter C grammar")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")

	return cmd
}

func runSync(cmd *cobra.Command, flags *globalFlags, parserPath string, grammar bool, format string) error {
	err := checkFormat(format)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer sess.close(cmd.Context())

	embedded := symbols.C()

	var results []syncResult

	if parserPath != "" {
		parsed, parseErr := loadParserC(parserPath, cmd.InOrStdin())
		if parseErr != nil {
			return parseErr
		}

		results = append(results, syncResult{Source: parserPath, Drifts: symbols.Compare(parsed, embedded)})
	}

	if grammar {
		results = append(results, syncResult{
			Source: "tree-sitter-c grammar",
			Drifts: symbols.CheckLanguage(embedded, symbols.CLanguage()),
		})
	}

	total := 0
	for _, result := range results {
		total += len(result.Drifts)
		sess.logger.DebugContext(cmd.Context(), "enumeration compared", "source", result.Source, "drifts", len(result.Drifts))
	}

	out := cmd.OutOrStdout()

	if format == formatText {
		for _, result := range results {
			writeSyncText(out, result, embedded.Len())
		}
	} else {
		err = writeStructured(out, format, results)
		if err != nil {
			return err
		}
	}

	if total > 0 {
		return fmt.Errorf("%w: %d differences", ErrEnumerationDrift, total)
	}

	return nil
}

func writeSyncText(w io.Writer, result syncResult, symbolCount int) {
	if len(result.Drifts) == 0 {
		color.New(color.FgGreen).Fprintf(w, "%s: in sync (%d symbols)\n", result.Source, symbolCount)

		return
	}

	color.New(color.FgRed).Fprintf(w, "%s: %d differences\n", result.Source, len(result.Drifts))

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Kind", "Symbol", "ID", "Want", "Got"})

	for _, drift := range result.Drifts {
		tw.AppendRow(table.Row{string(drift.Kind), drift.Symbol, drift.ID, drift.Want, drift.Got})
	}

	tw.Render()
}

func loadParserC(path string, stdin io.Reader) (symbols.Enumeration, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return symbols.Enumeration{}, err
	}

	enum, err := symbols.ParseParserC(string(data))
	if err != nil {
		return symbols.Enumeration{}, fmt.Errorf("%s: %w", path, err)
	}

	return enum, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // reading a user-named input file is the purpose.
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
