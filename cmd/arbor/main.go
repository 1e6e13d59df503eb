package main

import (
	"github.com/arbortree/arbor/cmd"
)

func main() {
	// Handle terminal compatibility concerns (e.g. mintty on Windows)
	// before anything else touches standard output.
	cmd.HandleTerminalCompatibility()

	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
