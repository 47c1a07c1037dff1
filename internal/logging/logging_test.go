package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		verbose   bool
		debug     bool
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", false, false, false, false},
		{"verbose", true, false, true, false},
		{"debug", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger(tt.verbose, tt.debug)
			l.Infof("cloning %s", "repo")
			l.Debugf("args %v", []string{"a"})

			if got := strings.Contains(out.String(), "[info] cloning repo"); got != tt.wantInfo {
				t.Errorf("info shown = %t, want %t (output %q)", got, tt.wantInfo, out.String())
			}
			if got := strings.Contains(out.String(), "[debug] args [a]"); got != tt.wantDebug {
				t.Errorf("debug shown = %t, want %t (output %q)", got, tt.wantDebug, out.String())
			}
		})
	}
}

func TestWarnAndErrorAlwaysShown(t *testing.T) {
	color.NoColor = true
	l, out, errOut := newTestLogger(false, false)

	l.Warnf("install exited with %d", 1)
	err := l.ErrorfAndReturn("copy failed: %s", "boom")

	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[warn] install exited with 1") {
		t.Errorf("missing warning in %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "[error] copy failed: boom") {
		t.Errorf("missing error in %q", errOut.String())
	}
	if err == nil || err.Error() != "copy failed: boom" {
		t.Errorf("ErrorfAndReturn returned %v", err)
	}
}
