// Package termutil detects what the active terminal can do: whether
// it understands ANSI escape sequences and whether it can render text
// in the output encoding implied by the locale.
//
// # ANSI detection
//
// SupportsANSI consults the environment on every call. Setting
// ANSI_COLORS_DISABLED (to any value) wins over platform detection.
// On Windows the console is probed for virtual terminal processing
// and the flag is enabled as a side effect when possible; probe
// failures count as unsupported. Everywhere else ANSI support is
// assumed.
//
// # Encoding guard
//
// The output charset is resolved once at process start from LC_ALL,
// LC_CTYPE, and LANG (in that order), falling back to ASCII when the
// locale does not name one. CanRender reports whether a string
// survives that charset losslessly, and LocaleEscape substitutes "?"
// for characters it cannot represent:
//
//	if termutil.CanRender("✔") {
//	    fmt.Println("✔ done")
//	} else {
//	    fmt.Println("[+] done")
//	}
//
// Both are pure queries; neither ever panics on malformed input.
package termutil
