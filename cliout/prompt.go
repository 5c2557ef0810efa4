package cliout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lgvorg1/xy-wasabi/termutil"
	"github.com/lgvorg1/xy-wasabi/textutil"
)

// GetInput writes a wrapped prompt to stdout and blocks reading one
// line from stdin, returned verbatim without the line ending. The
// default, when non-empty, is shown in the prompt but never
// substituted: callers apply it when the returned string is empty.
func GetInput(description, defaultValue string) (string, error) {
	return ReadInput(os.Stdin, os.Stdout, description, defaultValue, textutil.DefaultIndent)
}

// ReadInput is GetInput with the streams and indentation explicit.
func ReadInput(in io.Reader, out io.Writer, description, defaultValue string, indent int) (string, error) {
	prompt := description
	if defaultValue != "" {
		prompt += fmt.Sprintf(" (default: %s)", defaultValue)
	}
	prompt = textutil.Wrap(prompt+": ", textutil.DefaultWrapWidth, indent)
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := readLine(in)
	if err != nil {
		// EOF with a partial line still counts as input.
		if err != io.EOF || line == "" {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r"), nil
}

// readLine reads up to and including the next newline, returning the
// line without it. It reads one byte at a time so nothing past the
// newline is consumed: sequential prompts sharing a stream each see
// their own line.
func readLine(in io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return b.String(), nil
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			return b.String(), err
		}
	}
}

// Confirm prompts for a yes/no answer and reports whether the user
// answered yes. Read errors count as no.
func Confirm(message string) bool {
	answer, err := GetInput(message+" [y/N]", "")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// GetPassword writes a wrapped prompt to stdout and reads a line from
// stdin with terminal echo disabled. When stdin is not a terminal the
// line is read normally, so piped input still works.
func GetPassword(description string) (string, error) {
	if !termutil.IsTerminal(os.Stdin) {
		return GetInput(description, "")
	}
	prompt := textutil.Wrap(description+": ", textutil.DefaultWrapWidth, textutil.DefaultIndent)
	if _, err := fmt.Fprint(os.Stdout, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}
