// Package main provides the sqldoc CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/sqldoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
