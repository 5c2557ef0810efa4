//go:build windows

package termutil

import (
	"os"

	"golang.org/x/sys/windows"
)

// platformSupportsANSI reports whether the Windows console can pass
// ANSI escapes through. ANSICON marks a wrapper that handles escapes
// itself; otherwise the console backing stdout is probed.
func platformSupportsANSI() bool {
	if _, ok := os.LookupEnv("ANSICON"); ok {
		return true
	}
	return enableVirtualTerminal(os.Stdout)
}

// enableVirtualTerminal probes the console backing f for virtual
// terminal processing, turning it on as a side effect when it is off.
// The probe is idempotent and best effort: any console API failure
// means unsupported.
func enableVirtualTerminal(f *os.File) bool {
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return false
	}
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
