package main

import (
	"os"

	"github.com/depwave/depwave-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
