// Package runner contains a small reporting layer on top of "go test -json"
// output. It exists so the example CLI at the repository root can demonstrate
// what a test run looks like from the tooling side: selecting tests with
// regex filters, streaming per-test progress to a logger, and summarizing
// pass/fail/skip results at the end.
//
// The test-execution engine itself is the go tool; this package only consumes
// the event stream it produces.
package runner
