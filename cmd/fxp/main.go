package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shabbyrobe/go-fxp/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// An ExitError has already been reported on stdout.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "fxp:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
