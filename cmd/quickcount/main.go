// Package main is the entry point for the QuickCount CLI.
package main

import (
	"os"

	"github.com/f3rmion/quickcount/cmd/quickcount/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
