// Package testutil provides helpers for testing terminal output and
// prompt interaction: capturing what a function writes to stdout and
// feeding it scripted stdin.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureOutput captures stdout during fn. It redirects os.Stdout to
// a pipe, runs fn, and returns everything written. The original
// stdout is always restored.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() {
//	    fmt.Println(cliout.Good("done"))
//	})
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	defer func() { os.Stdout = orig }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	return <-done
}

// WithStdin feeds input as the process stdin for the duration of fn.
// The original stdin is always restored.
//
// Example:
//
//	testutil.WithStdin(t, "y\n", func() {
//	    ok = cliout.Confirm("Proceed?")
//	})
func WithStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	orig := os.Stdin
	defer func() { os.Stdin = orig }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer r.Close()

	go func() {
		_, _ = w.WriteString(input)
		_ = w.Close()
	}()
	os.Stdin = r

	fn()
}
