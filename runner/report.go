package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

const filterSkipReason = "excluded by filter parameters"

// testEvent matches the JSON objects emitted by "go test -json" (one per line).
type testEvent struct {
	Time    time.Time
	Action  string
	Package string
	Test    string
	Elapsed float64
	Output  string
}

type testState struct {
	output   CapturedOutput
	excluded bool
}

// ParseEvents consumes a "go test -json" event stream, reporting each test to
// testLogger as its outcome arrives. Tests excluded by the filter are
// reported as skipped rather than suppressed entirely, so the final counts
// still account for them.
func ParseEvents(input io.Reader, filter Filter, testLogger TestLogger) (Results, error) {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	var results Results
	states := make(map[string]*testState)

	dec := json.NewDecoder(input)
	for {
		var e testEvent
		if err := dec.Decode(&e); err != nil {
			if err == io.EOF {
				break
			}
			return results, fmt.Errorf("malformed test event: %w", err)
		}
		if e.Test == "" {
			// Package-level events carry compilation output and package
			// totals, which the summary does not need.
			continue
		}

		id := newTestID(e.Package, e.Test)
		key := e.Package + "\x00" + e.Test
		state := states[key]
		if state == nil {
			state = &testState{}
			states[key] = state
		}

		switch e.Action {
		case "run":
			if filter != nil && !filter(id) {
				state.excluded = true
				continue
			}
			testLogger.TestStarted(id)
		case "output":
			line := strings.TrimRight(e.Output, "\n")
			if line == "" || isFramingLine(line) {
				continue
			}
			state.output = append(state.output, CapturedMessage{Time: e.Time, Message: line})
		case "pass", "fail":
			if state.excluded {
				result := TestResult{TestID: id, Output: state.output}
				results.Skipped = append(results.Skipped, result)
				testLogger.TestSkipped(id, filterSkipReason)
				continue
			}
			result := TestResult{TestID: id, Failed: e.Action == "fail", Output: state.output}
			results.Tests = append(results.Tests, result)
			if result.Failed {
				results.Failures = append(results.Failures, result)
			}
			testLogger.TestFinished(id, result.Failed, state.output)
		case "skip":
			result := TestResult{TestID: id, Output: state.output}
			results.Skipped = append(results.Skipped, result)
			if state.excluded {
				testLogger.TestSkipped(id, filterSkipReason)
			} else {
				testLogger.TestSkipped(id, skipReason(state.output))
			}
		}
	}
	return results, nil
}

// isFramingLine reports whether a line is part of the go tool's own progress
// framing rather than output the test wrote.
func isFramingLine(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	return strings.HasPrefix(trimmed, "=== ") || strings.HasPrefix(trimmed, "--- ")
}

// skipReason extracts a reason from the last line the test logged before
// skipping, which is where t.Skip puts its message.
func skipReason(output CapturedOutput) string {
	if len(output) == 0 {
		return ""
	}
	message := strings.TrimSpace(output[len(output)-1].Message)
	// Strip the "file.go:123: " prefix that the test runner adds.
	if colon := strings.Index(message, ": "); colon >= 0 && strings.Contains(message[:colon], ".go:") {
		message = message[colon+2:]
	}
	return message
}
