package main

import (
	"os"

	"github.com/katalvlaran/tessella/cmd/tessella/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
