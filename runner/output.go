package runner

import (
	"fmt"
	"io"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// CapturedMessage is one line of output produced by a test, with the time the
// go tool reported for it.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// Dump writes the captured lines to dest, each prefixed with the given string
// and a timestamp.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}
