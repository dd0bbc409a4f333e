package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ps-lang/ps/internal/interp"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive line-at-a-time session",
	Long: `repl reads standard input one line at a time, evaluating each line
against a single Interpreter whose operand and dictionary stacks
persist across lines, until end-of-stream or the quit operator.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	it := interp.New(scopingMode(), os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == ":words" {
			for _, name := range it.Dicts.Top().Names() {
				fmt.Fprintln(os.Stdout, name)
			}
			continue
		}
		if perr := it.RunLine(line); perr != nil {
			fmt.Fprintf(os.Stderr, "ps: %v\n", perr)
		}
		if it.Quit() {
			break
		}
	}
	// The REPL always exits 0 on end-of-stream or quit, regardless of
	// any per-line errors already reported above.
	return nil
}
