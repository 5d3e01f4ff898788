// Package cmd wires the pluto binary: `pluto <file>` runs a script,
// `pluto` with no arguments enters the REPL, and `pluto lex <file>` dumps
// the token stream for debugging.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mi66mc/pluto/diag"
	"github.com/mi66mc/pluto/eval"
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
	"github.com/mi66mc/pluto/repl"
)

// Version is set by build flags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "pluto [file]",
	Short: "The Pluto scripting language",
	Long: `Pluto is a small dynamically-typed scripting language with a
tree-walking interpreter.

With a file argument the program is tokenized, parsed, and evaluated.
Without arguments an interactive REPL starts.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return repl.New(Version).Start(os.Stdout)
		}
		return runFile(args[0])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runFile drives the pipeline over a script file. Parse errors print a
// colored banner with line, column, and a caret; runtime errors print a
// single `Error:` line. Both exit with status 1.
func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %s: %v\n", path, err)
		return err
	}
	src := string(content)

	program, err := parser.New(src).ParseProgram()
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			diag.FormatParseError(os.Stderr, src, pe.Msg, pe.Pos)
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		return err
	}

	evaluator := eval.New()
	result := evaluator.Eval(program)
	if object.IsError(result) {
		diag.FormatRuntimeError(os.Stderr, result.ToString())
		return fmt.Errorf("%s", result.ToString())
	}
	return nil
}
