package main

import (
	"os"

	"crowdfund/internal/cli"
)

// main is the entry point of the crowdfund service. Without a command it
// serves the HTTP API; see --help for the rest.
func main() {
	os.Exit(cli.Run(cli.Environment{Stdout: os.Stdout, Stderr: os.Stderr}, os.Args[1:]))
}
