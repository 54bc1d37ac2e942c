package runner

// TestLogger receives per-test progress while an event stream is being parsed.
type TestLogger interface {
	TestStarted(id TestID)
	TestFinished(id TestID, failed bool, output CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

// NullTestLogger returns a TestLogger that discards everything.
func NullTestLogger() TestLogger { return nullTestLogger{} }
