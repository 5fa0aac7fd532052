// Package main is the entry point for the tracker CLI.
package main

import (
	"os"

	"github.com/Joesmod/rainmaker-dashboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
