package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestVerboseLoggerWritesAllLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdTo(&buf, true)

	l.Debug("dbg", map[string]interface{}{"k": 1})
	l.Info("inf", nil)
	l.Warn("wrn", nil)
	l.Error("err", errors.New("boom"), nil)

	out := buf.String()
	for _, want := range []string{"[DEBUG] dbg", "[INFO] inf", "[WARN] wrn", "[ERROR] err boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuietLoggerWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdTo(&buf, false)

	l.Debug("dbg", nil)
	l.Info("inf", nil)
	l.Warn("wrn", nil)
	l.Error("err", errors.New("boom"), nil)

	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote output: %q", buf.String())
	}
}
