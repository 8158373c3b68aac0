// Package main provides the cbioingest CLI.
package main

import (
	"os"

	"github.com/linyc74/cbioingest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
