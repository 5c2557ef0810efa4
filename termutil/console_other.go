//go:build !windows

package termutil

// platformSupportsANSI assumes ANSI support everywhere but Windows.
func platformSupportsANSI() bool {
	return true
}
