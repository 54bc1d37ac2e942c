package runner

import "strings"

// TestID identifies a test within a run: the package it belongs to, plus the
// test name split on "/" so subtests keep their hierarchy.
type TestID struct {
	Package string
	Path    []string
}

func newTestID(pkg, test string) TestID {
	return TestID{Package: pkg, Path: strings.Split(test, "/")}
}

func (t TestID) String() string {
	name := strings.Join(t.Path, "/")
	if t.Package == "" {
		return name
	}
	return t.Package + ": " + name
}

// TestResult is the outcome of one test, with any output it produced.
type TestResult struct {
	TestID TestID
	Failed bool
	Output CapturedOutput
}

// Results accumulates the outcomes of a whole run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

// OK returns true if no test failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}
