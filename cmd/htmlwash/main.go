// Package main is the entry point for the htmlwash CLI.
package main

import (
	"os"

	"github.com/jmylchreest/htmlwash/cmd/htmlwash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
