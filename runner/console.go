package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgYellow)
)

// ConsoleTestLogger writes one line per test as results arrive. By default it
// only mentions failures and skips; Verbose makes it report every test.
type ConsoleTestLogger struct {
	Dest                 io.Writer
	Verbose              bool
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) dest() io.Writer {
	if c.Dest == nil {
		return os.Stdout
	}
	return c.Dest
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	if c.Verbose {
		fmt.Fprintf(c.dest(), "[%s]\n", id)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, output CapturedOutput) {
	if failed {
		failColor.Fprintf(c.dest(), "  FAILED: %s\n", id)
	} else if c.Verbose {
		passColor.Fprintf(c.dest(), "  PASSED: %s\n", id)
	}
	if len(output) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		output.Dump(c.dest(), "    ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.dest(), "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.dest(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

// PrintFilterDescription explains up front which tests the run will report,
// if any filters were given.
func PrintFilterDescription(dest io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(dest, "Some tests will be reported as skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(dest)
}

// PrintResults writes the end-of-run summary.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		passColor.Fprintf(dest, "All tests passed (%d run, %d skipped)\n",
			len(results.Tests), len(results.Skipped))
		return
	}
	failColor.Fprintf(dest, "FAILED: %d of %d tests (%d skipped)\n",
		len(results.Failures), len(results.Tests), len(results.Skipped))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  %s\n", f.TestID)
	}
}
