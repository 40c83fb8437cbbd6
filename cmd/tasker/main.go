// Package main is the entry point for the tasker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		return err
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
