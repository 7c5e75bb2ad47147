package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/leafgen/pkg/leaftable"
)

// Values accepted by explain --only.
const (
	onlyStructural = "structural"
	onlyLeaf       = "leaf"
	onlyOverride   = "override"
)

// ErrUnknownFilter is returned for an unsupported --only value.
var ErrUnknownFilter = errors.New("unknown filter")

func newExplainCommand(flags *globalFlags) *cobra.Command {
	var format, only string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show the value of every symbol and the step that decided it",
		Long: `List every table slot with its symbol name, value and reason:
  default     no node-types.json entry made it structural
  structural  node-types.json gives the symbol children or fields
  override    forced by the override list

Examples:
  leafgen explain --only structural
  leafgen explain --format json | jq '.stats'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplain(cmd, flags, format, only)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&only, "only", "", "show only structural, leaf or override entries")

	return cmd
}

func runExplain(cmd *cobra.Command, flags *globalFlags, format, only string) error {
	err := checkFormat(format)
	if err != nil {
		return err
	}

	filters, err := explainFilters(only)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer sess.close(cmd.Context())

	tbl, err := sess.buildTable(cmd.Context())
	if err != nil {
		return err
	}

	report := tbl.Explain(filters...)

	if format == formatText {
		writeExplainText(cmd.OutOrStdout(), report)

		return nil
	}

	return writeStructured(cmd.OutOrStdout(), format, report)
}

func explainFilters(only string) ([]leaftable.Filter, error) {
	switch only {
	case "":
		return nil, nil
	case onlyStructural:
		return []leaftable.Filter{leaftable.ByClass(leaftable.Structural)}, nil
	case onlyLeaf:
		return []leaftable.Filter{leaftable.ByClass(leaftable.Leaf)}, nil
	case onlyOverride:
		return []leaftable.Filter{leaftable.ByReason(leaftable.ReasonOverride)}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want structural, leaf or override)", ErrUnknownFilter, only)
	}
}

func writeExplainText(w io.Writer, report leaftable.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.AppendHeader(table.Row{"ID", "Symbol", "Value", "Reason"})

	for _, entry := range report.Entries {
		tw.AppendRow(table.Row{entry.ID, entry.Symbol, int(entry.Class), entry.Reason})
	}

	tw.Render()

	stats := report.Stats

	fmt.Fprintf(w, "\n%d slots: %d leaf, %d structural, %d overridden, %d unassigned\n",
		stats.Slots, stats.Leaf, stats.Structural, stats.Overridden, stats.Unassigned)
}
