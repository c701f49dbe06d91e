package main

import (
	"fmt"
	"os"

	"wordy/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
