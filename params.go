package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gotestlab/testing-examples/runner"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	dir      string
	packages string
	filters  runner.RegexFilters
	short    bool
	verbose  bool
	debug    bool
	debugAll bool
	noColor  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.StringVar(&c.dir, "dir", ".", "directory of the module to test")
	fs.StringVar(&c.packages, "packages", "./...", "package pattern passed to go test")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to report")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to exclude tests from the report")
	fs.BoolVar(&c.short, "short", false, "run the tests in short mode")
	fs.BoolVar(&c.verbose, "verbose", false, "report every test, not just failures and skips")
	fs.BoolVar(&c.debug, "debug", false, "show captured output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show captured output for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colorized output")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

func (c commandParams) goTestArgs() []string {
	args := []string{"go", "test", "-json"}
	if c.short {
		args = append(args, "-short")
	}
	return append(args, c.packages)
}

func (c commandParams) commandDescription() string {
	var b commandBuilder
	b.add(c.goTestArgs()...)
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
