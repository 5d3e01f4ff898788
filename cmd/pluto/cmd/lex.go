package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mi66mc/pluto/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream of a script (for debugging)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read %s: %w", args[0], err)
		}
		for _, tok := range lexer.New(string(content)).ConsumeTokens() {
			fmt.Printf("%6d  %-12s %s\n", tok.Pos, tok.Type, tok.Literal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
