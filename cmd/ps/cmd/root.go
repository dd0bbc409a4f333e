// Package cmd implements the command-line front end: flag parsing,
// file reading, and REPL line input, kept outside the interpreter
// core and built on Cobra.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ps-lang/ps/internal/interp"
)

var lexical bool

var rootCmd = &cobra.Command{
	Use:   "ps",
	Short: "An interpreter for a postfix, stack-based subset of PostScript",
	Long: `ps evaluates programs written in a subset of the PostScript language:
a postfix, stack-based language of literals, names, and executable
procedures operating on an operand stack and a dictionary stack.

Run a file:
  ps run program.ps

Start an interactive session:
  ps repl`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&lexical, "lexical", false, "capture dictionary-stack snapshots at procedure construction (lexical scoping) instead of the default dynamic scoping")
}

func scopingMode() interp.Mode {
	if lexical {
		return interp.Lexical
	}
	return interp.Dynamic
}
