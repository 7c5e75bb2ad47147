package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const outputFileMode = 0o644

func newGenerateCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the leaf-vs-structural table",
		Long: `Build the table from node-types.json and print it.

Examples:
  leafgen generate
  leafgen generate --node-types grammar/node-types.json -o printable.inc
  leafgen generate --rev v0.23.0 --c-array is_leaf_symbol
  xz -dc node-types.json.xz | leafgen generate --node-types -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	addRenderFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.output, flagOutput, "o", "", "write the table to this file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *globalFlags) error {
	sess, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer sess.close(cmd.Context())

	table, err := sess.buildTable(cmd.Context())
	if err != nil {
		return err
	}

	rendered, err := sess.renderTable(table)
	if err != nil {
		return err
	}

	if sess.cfg.Output == "" {
		_, err = cmd.OutOrStdout().Write(rendered)
		if err != nil {
			return fmt.Errorf("write table: %w", err)
		}

		return nil
	}

	err = os.WriteFile(sess.cfg.Output, rendered, outputFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", sess.cfg.Output, err)
	}

	sess.logger.InfoContext(cmd.Context(), "table written",
		"path", sess.cfg.Output,
		"size", humanize.Bytes(uint64(len(rendered))),
		"symbols", table.Len(),
	)

	return nil
}
