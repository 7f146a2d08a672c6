package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kumekay/cmake-format/cmakelang"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Dump the argument tree of an invocation",
	Long: `Parses a command invocation from the given file (or stdin) and
prints the resulting argument tree. Commands declared in the configuration
file under additional_commands are recognized alongside the built-in
grammars.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		engine := cmakelang.New(
			cmakelang.WithLogger(logger.WithName("cmakelang")),
			cmakelang.WithConfig(cfg),
		)
		tree, err := engine.ParseCommand(source)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}

		fmt.Print(tree.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
