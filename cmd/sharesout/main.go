package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/sharesout/internal/cli"
	"github.com/rshade/sharesout/pkg/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.String())
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil && !isSilent(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps err to an exit status: 0 for nil, the carried code for
// a *cli.ExitError and 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func isSilent(err error) bool {
	var exitErr *cli.ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}
