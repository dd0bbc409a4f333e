package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ps-lang/ps/internal/interp"
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Execute a program file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ps: %v\n", err)
		return err
	}

	it := interp.New(scopingMode(), os.Stdout)
	if perr := it.Run(path, string(src)); perr != nil {
		fmt.Fprintf(os.Stderr, "ps: %v\n", perr)
		return perr
	}
	return nil
}
