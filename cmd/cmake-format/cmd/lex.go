package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kumekay/cmake-format/cmakelang/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Dump the token stream of an invocation",
	Long: `Lexes the given file (or stdin) and prints one token per line:
kind, source location, and spelling.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		tokens, err := lexer.Tokenize(source)
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}

		for _, tok := range tokens {
			fmt.Printf("%-16s %-8s %q\n", tok.Kind.String(), tok.Location(), tok.Spelling)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
