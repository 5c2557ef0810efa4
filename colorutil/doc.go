// Package colorutil applies ANSI escape sequences for 256-color
// foreground/background styling, bold, and underline.
//
// Colors are identified either by symbolic name or by raw palette
// index:
//
//	import "github.com/lgvorg1/xy-wasabi/colorutil"
//
//	// Symbolic name, resolved through the fixed palette table
//	colorutil.Colorize("ok", colorutil.Style{Foreground: colorutil.Green})
//
//	// Raw palette index, passed through unvalidated
//	colorutil.Colorize("hot", colorutil.Style{Foreground: colorutil.Index(208), Bold: true})
//
// A Colorize call with no foreground, background, or bold requested
// returns its input unchanged, so callers can apply styles
// unconditionally and let capability detection decide elsewhere
// whether escapes reach the terminal (see the termutil package).
//
// The package performs no range validation: out-of-range indexes and
// unknown names are emitted verbatim into the escape sequence.
package colorutil
