// Command gotestreport runs "go test -json" for a module and turns the event
// stream into a compact, colorized report, with regex filters for selecting
// which tests to include. It is the demo front end for the runner package.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/gotestlab/testing-examples/runner"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	runner.PrintFilterDescription(os.Stdout, params.filters)
	fmt.Printf("Running: %s\n\n", params.commandDescription())

	args := params.goTestArgs()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = params.dir
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not capture go test output: %s\n", err)
		os.Exit(1)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "could not start go test: %s\n", err)
		os.Exit(1)
	}

	testLogger := &runner.ConsoleTestLogger{
		Dest:                 os.Stdout,
		Verbose:              params.verbose,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	results, parseErr := runner.ParseEvents(stdout, params.filters.AsFilter, testLogger)

	// go test exits nonzero whenever any test fails; that is already
	// reflected in the parsed results, so only other errors are fatal.
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "go test: %s\n", err)
			os.Exit(1)
		}
		if len(results.Tests) == 0 && len(results.Skipped) == 0 {
			fmt.Fprintln(os.Stderr, "go test produced no test events; see output above")
			os.Exit(1)
		}
	}
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "reading test output: %s\n", parseErr)
		os.Exit(1)
	}

	fmt.Println()
	runner.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
