package colorutil

import (
	"strconv"
	"strings"
)

// palette maps symbolic color names to indexes in the standard
// 256-color ANSI palette. The message levels good/fail/warn/info
// alias their conventional colors.
var palette = map[string]int{
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"pink":   5,
	"cyan":   6,
	"white":  7,
	"grey":   8,
	"black":  16,
	"good":   2,
	"fail":   1,
	"warn":   3,
	"info":   4,
}

// Color identifies a terminal color by symbolic name or by raw
// palette index. The zero value means no color.
type Color struct {
	name    string
	index   int
	indexed bool
}

// Name returns a Color identified by symbolic name. Names outside the
// fixed table are not rejected; they are emitted verbatim into the
// escape sequence.
func Name(name string) Color {
	return Color{name: name}
}

// Index returns a Color identified by raw palette index. Index 0
// is indistinguishable from the zero Color and counts as unset.
func Index(n int) Color {
	return Color{index: n, indexed: true}
}

// Colors for every entry in the fixed name table.
var (
	Red    = Name("red")
	Green  = Name("green")
	Yellow = Name("yellow")
	Blue   = Name("blue")
	Pink   = Name("pink")
	Cyan   = Name("cyan")
	White  = Name("white")
	Grey   = Name("grey")
	Black  = Name("black")
)

// IsSet reports whether c names a color at all.
func (c Color) IsSet() bool {
	if c.indexed {
		return c.index != 0
	}
	return c.name != ""
}

// code returns the palette fragment placed after "38;5;" or "48;5;"
// in an escape sequence. Known names resolve through the palette
// table; unknown names and raw indexes pass through verbatim.
func (c Color) code() string {
	if c.indexed {
		return strconv.Itoa(c.index)
	}
	if n, ok := palette[c.name]; ok {
		return strconv.Itoa(n)
	}
	return c.name
}

// Lookup resolves a symbolic name to its palette index.
func Lookup(name string) (int, bool) {
	n, ok := palette[name]
	return n, ok
}

// Style describes the ANSI styling to apply to a span of text.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Underline  bool
}

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

// Colorize wraps text in the ANSI escape sequence for style and
// terminates it with a reset. Text is returned unchanged unless a
// foreground, background, or bold style is requested; underline alone
// has no effect.
func Colorize(text string, style Style) string {
	if !style.Foreground.IsSet() && !style.Background.IsSet() && !style.Bold {
		return text
	}
	codes := make([]string, 0, 4)
	if style.Bold {
		codes = append(codes, "1")
	}
	if style.Underline {
		codes = append(codes, "4")
	}
	if style.Foreground.IsSet() {
		codes = append(codes, "38;5;"+style.Foreground.code())
	}
	if style.Background.IsSet() {
		codes = append(codes, "48;5;"+style.Background.code())
	}
	return csi + strings.Join(codes, ";") + "m" + text + reset
}
