package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/almanac/internal/cli"
	"github.com/alexanderramin/almanac/internal/cli/formatter"
)

func main() {
	if err := run(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			msg = formatter.ErrorText(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
