// Package commands implements the leafgen CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

// Flag names shared between commands and the config overlay.
const (
	flagConfig    = "config"
	flagNodeTypes = "node-types"
	flagRev       = "rev"
	flagRepo      = "repo"
	flagRowWidth  = "row-width"
	flagCArray    = "c-array"
	flagOutput    = "output"
	flagNoColor   = "no-color"
	flagVerbose   = "verbose"
)

// globalFlags holds flag values; they override the loaded configuration
// only when set on the command line.
type globalFlags struct {
	configPath string
	nodeTypes  string
	rev        string
	repo       string
	cArray     string
	output     string
	rowWidth   int
	noColor    bool
	verbose    bool
}

// NewRootCommand creates the leafgen root command. Without a subcommand it
// behaves like generate.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "leafgen",
		Short: "Generate the leaf-vs-structural symbol table for the tree-sitter C grammar",
		Long: `leafgen classifies every tree-sitter-c grammar symbol as a leaf (1) or a
structural node (0) and prints the table as a comma separated list,
25 values per line, ready to be included into a C array initializer.

A symbol is structural when node-types.json gives it children or fields.
anon_sym_LF is always structural and sym_string_literal is always a leaf.

Commands:
  generate  Print the table (default)
  check     Compare the table against a committed artifact
  explain   Show why every symbol got its value
  sync      Check the embedded symbol enumeration for drift
  enum      Regenerate the embedded symbol enumeration from parser.c`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.configPath, flagConfig, "", "config file (default is .leafgen.yaml in ., ./config or $HOME)")
	persistent.StringVar(&flags.nodeTypes, flagNodeTypes, "", `node-types.json path, "-" for stdin, .lz4 is decompressed`)
	persistent.StringVar(&flags.rev, flagRev, "", "read node-types.json from this git revision instead of the work tree")
	persistent.StringVar(&flags.repo, flagRepo, ".", "directory inside the git repository holding the grammar")
	persistent.BoolVar(&flags.noColor, flagNoColor, false, "disable colored output")
	persistent.BoolVarP(&flags.verbose, flagVerbose, "v", false, "debug logging on stderr")

	addRenderFlags(rootCmd, flags)
	rootCmd.Flags().StringVarP(&flags.output, flagOutput, "o", "", "write the table to this file instead of stdout")

	rootCmd.AddCommand(newGenerateCommand(flags))
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newExplainCommand(flags))
	rootCmd.AddCommand(newSyncCommand(flags))
	rootCmd.AddCommand(newEnumCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func addRenderFlags(cmd *cobra.Command, flags *globalFlags) {
	cmd.Flags().IntVar(&flags.rowWidth, flagRowWidth, 0, "values per output line (default 25)")
	cmd.Flags().StringVar(&flags.cArray, flagCArray, "", "wrap the table in a static const uint8_t array with this name")
}
