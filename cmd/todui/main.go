// Package main provides the entry point for the todui CLI.
package main

import (
	"os"

	"github.com/randalmurphal/todui/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
