package termutil

import (
	"os"

	"golang.org/x/term"
)

// EnvANSIDisabled names the environment variable that disables ANSI
// color output when set to any value.
const EnvANSIDisabled = "ANSI_COLORS_DISABLED"

// SupportsANSI reports whether the active terminal understands ANSI
// escape sequences. The environment is read fresh on every call so a
// caller toggling EnvANSIDisabled sees the change immediately.
func SupportsANSI() bool {
	if os.Getenv(EnvANSIDisabled) != "" {
		return false
	}
	return platformSupportsANSI()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
