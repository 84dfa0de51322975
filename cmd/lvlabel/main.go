// Package main is the entry point for the lvlabel CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lvlabel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
