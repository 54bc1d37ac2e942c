package main

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/gotestlab/testing-examples/runner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParamsDefaults(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{"gotestreport"}))

	assert.Equal(t, ".", params.dir)
	assert.Equal(t, "./...", params.packages)
	assert.False(t, params.short)
	assert.False(t, params.filters.IsDefined())
}

func TestReadParamsFilters(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{
		"gotestreport", "-run", "bank", "-run", "calc", "-skip", "Slow", "-short",
	}))

	assert.True(t, params.filters.MustMatch.AnyMatch("example.com/m/bank: TestDeposit"))
	assert.True(t, params.filters.MustMatch.AnyMatch("example.com/m/calc: TestAdd"))
	assert.True(t, params.filters.MustNotMatch.AnyMatch("TestSlowThing"))
	assert.True(t, params.short)
}

func TestGoTestArgs(t *testing.T) {
	params := commandParams{packages: "./..."}
	assert.Equal(t, []string{"go", "test", "-json", "./..."}, params.goTestArgs())

	params.short = true
	assert.Equal(t, []string{"go", "test", "-json", "-short", "./..."}, params.goTestArgs())
}

func TestCommandDescriptionQuoting(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("expected quoting is POSIX shell syntax")
	}
	var b commandBuilder
	b.add("go", "test", "-run", "TestAdd|TestSubtract")
	assert.Equal(t, `go test -run 'TestAdd|TestSubtract'`, b.String())
}

func TestRunReportAgainstRealGoTest(t *testing.T) {
	// End-to-end check of the report pipeline against the go tool itself.
	if testing.Short() {
		t.Skip("skipping go toolchain round trip in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	cmd := exec.Command("go", "test", "-json", "-run", "TestAdd", "./calc")
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	results, parseErr := runner.ParseEvents(stdout, nil, runner.NullTestLogger())
	require.NoError(t, cmd.Wait())
	require.NoError(t, parseErr)

	assert.True(t, results.OK())
	assert.NotEmpty(t, results.Tests, "go test should have reported at least one test")
}
