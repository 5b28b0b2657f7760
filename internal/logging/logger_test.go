package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerTagsAndStreams(t *testing.T) {
	var out, errBuf bytes.Buffer
	l := New(&out, &errBuf)

	l.Infof("installing %s", "aws")
	l.Successf("done")
	l.Skipf("already present")
	l.Warnf("not default shell")
	l.Errorf("clone failed")

	stdout := out.String()
	stderr := errBuf.String()

	for _, want := range []string{"[INFO] installing aws", "[ OK ] done", "[SKIP] already present"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	for _, want := range []string{"[WARN] not default shell", "[FAIL] clone failed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestQuietSuppressesInfoButNotErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	l := New(&out, &errBuf)
	l.Quiet = true

	l.Infof("hidden")
	l.Successf("hidden")
	l.Skipf("hidden")
	l.Errorf("still shown")

	if out.Len() != 0 {
		t.Errorf("quiet logger wrote to stdout: %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "still shown") {
		t.Error("quiet mode must not suppress errors")
	}
}

func TestDebugGated(t *testing.T) {
	var out, errBuf bytes.Buffer
	l := New(&out, &errBuf)

	l.Debugf("invisible")
	if errBuf.Len() != 0 {
		t.Errorf("debug output without debug mode: %q", errBuf.String())
	}

	l.Debug = true
	l.Debugf("visible")
	if !strings.Contains(errBuf.String(), "[DBUG] visible") {
		t.Errorf("debug line missing: %q", errBuf.String())
	}
}
