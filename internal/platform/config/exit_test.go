package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExits(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = osExit })

	var buf bytes.Buffer
	exitf(&buf, "Error: %s", "content db missing")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if buf.String() != "Error: content db missing\n" {
		t.Fatalf("output = %q", buf.String())
	}
}
