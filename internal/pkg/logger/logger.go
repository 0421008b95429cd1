package logger

import (
	"io"
	"log"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// All levels are gated behind verbose; user-facing outcomes travel through
// results, so logs exist purely as a debugging aid.
type StdLogger struct {
	verbose bool
	out     *log.Logger
}

// NewStd creates a StdLogger on the default log output.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, out: log.Default()}
}

// NewStdTo creates a StdLogger writing to w. Tests use it to capture log
// lines.
func NewStdTo(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, out: log.New(w, "", log.LstdFlags)}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[ERROR]", msg, err, fields)
}
