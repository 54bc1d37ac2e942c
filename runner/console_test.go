package runner

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep assertions on console output independent of terminal detection.
	color.NoColor = true
}

func TestConsoleTestLoggerDefaultOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Dest: &buf}

	id := newTestID("example.com/m/calc", "TestAdd")
	logger.TestStarted(id)
	logger.TestFinished(id, false, nil)
	assert.Empty(t, buf.String(), "passing tests should be silent unless verbose")

	logger.TestFinished(id, true, nil)
	assert.Contains(t, buf.String(), "FAILED: example.com/m/calc: TestAdd")
}

func TestConsoleTestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Dest: &buf, Verbose: true}

	id := newTestID("example.com/m/calc", "TestAdd")
	logger.TestStarted(id)
	logger.TestFinished(id, false, nil)

	assert.Contains(t, buf.String(), "[example.com/m/calc: TestAdd]")
	assert.Contains(t, buf.String(), "PASSED: example.com/m/calc: TestAdd")
}

func TestConsoleTestLoggerDebugOutput(t *testing.T) {
	output := CapturedOutput{{Time: time.Now(), Message: "some debug detail"}}
	id := newTestID("example.com/m/calc", "TestDivide")

	var quiet bytes.Buffer
	(&ConsoleTestLogger{Dest: &quiet}).TestFinished(id, true, output)
	assert.NotContains(t, quiet.String(), "some debug detail")

	var debug bytes.Buffer
	(&ConsoleTestLogger{Dest: &debug, DebugOutputOnFailure: true}).TestFinished(id, true, output)
	assert.Contains(t, debug.String(), "some debug detail")
}

func TestConsoleTestLoggerSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Dest: &buf}

	logger.TestSkipped(newTestID("p", "TestA"), "")
	logger.TestSkipped(newTestID("p", "TestB"), "not supported here")

	assert.Contains(t, buf.String(), "SKIPPED: p: TestA\n")
	assert.Contains(t, buf.String(), "SKIPPED: p: TestB (not supported here)\n")
}

func TestPrintResults(t *testing.T) {
	passing := Results{Tests: []TestResult{{}, {}}, Skipped: []TestResult{{}}}
	var buf bytes.Buffer
	PrintResults(&buf, passing)
	assert.Equal(t, "All tests passed (2 run, 1 skipped)\n", buf.String())

	failed := TestResult{TestID: newTestID("example.com/m/bank", "TestWithdraw"), Failed: true}
	failing := Results{Tests: []TestResult{{}, failed}, Failures: []TestResult{failed}}
	buf.Reset()
	PrintResults(&buf, failing)
	assert.Contains(t, buf.String(), "FAILED: 1 of 2 tests")
	assert.Contains(t, buf.String(), "  example.com/m/bank: TestWithdraw\n")
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("bank"))
	require.NoError(t, filters.MustNotMatch.Set("Slow"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any not matching "bank"`)
	assert.Contains(t, buf.String(), `skip any matching "Slow"`)
}
