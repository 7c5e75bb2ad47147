package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

// ErrTableDrift is returned when a committed table differs from a fresh build.
var ErrTableDrift = errors.New("table is out of date")

func newCheckCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check ARTIFACT",
		Short: "Verify a committed table matches a fresh build",
		Long: `Rebuild the table with the same options and compare it with ARTIFACT.
Differing lines are printed and the command fails.

Examples:
  leafgen check src/editor/printable_symbols.inc
  leafgen check --c-array is_leaf_symbol src/editor/printable_symbols.h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args[0])
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

func runCheck(cmd *cobra.Command, flags *globalFlags, artifact string) error {
	sess, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer sess.close(cmd.Context())

	committed, err := os.ReadFile(artifact) //nolint:gosec // user-supplied artifact path is the point of this command.
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	table, err := sess.buildTable(cmd.Context())
	if err != nil {
		return err
	}

	fresh, err := sess.renderTable(table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if string(committed) == string(fresh) {
		color.New(color.FgGreen).Fprintf(out, "%s is up to date (%d slots)\n", artifact, table.Len())

		return nil
	}

	color.New(color.FgRed).Fprintf(out, "%s differs from a fresh build\n", artifact)
	writeLineDiff(out, string(committed), string(fresh))

	return fmt.Errorf("%w: %s", ErrTableDrift, artifact)
}

// writeLineDiff prints removed and added lines, skipping unchanged ones.
func writeLineDiff(w io.Writer, committed, fresh string) {
	dmp := diffmatchpatch.New()

	src, dst, lines := dmp.DiffLinesToRunes(committed, fresh)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, diff := range diffs {
		var (
			prefix  string
			painter *color.Color
		)

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix, painter = "-", removed
		case diffmatchpatch.DiffInsert:
			prefix, painter = "+", added
		case diffmatchpatch.DiffEqual:
			continue
		}

		for line := range strings.Lines(diff.Text) {
			painter.Fprintf(w, "%s%s\n", prefix, strings.TrimSuffix(line, "\n"))
		}
	}
}
