package main

import (
	"os"

	"github.com/go-ps-lang/ps/cmd/ps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
