// Package textutil provides text coercion, word wrapping, and
// shortening helpers shared by the presentation packages.
package textutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// DefaultWrapWidth is the maximum line width used when the
	// terminal width cannot be resolved.
	DefaultWrapWidth = 80
	// DefaultIndent is the indentation applied to wrapped lines.
	DefaultIndent = 4
)

// ToText coerces v to its textual representation. Strings pass
// through unchanged, so the function is idempotent.
func ToText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Wrap greedily word-wraps v at maxWidth display columns, indenting
// every line, including the first, with indent spaces. Breaks happen
// only at whitespace: words are never split and hyphens are not break
// points, so a word wider than the usable width overflows on its own
// line. maxWidth <= 0 resolves the active terminal width, falling
// back to DefaultWrapWidth; indent < 0 uses DefaultIndent.
func Wrap(v any, maxWidth, indent int) string {
	if maxWidth <= 0 {
		maxWidth = terminalWidth()
	}
	if indent < 0 {
		indent = DefaultIndent
	}
	width := maxWidth - indent
	if width < 1 {
		width = 1
	}

	words := strings.Fields(ToText(v))
	if len(words) == 0 {
		return ""
	}

	prefix := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(words[0])
	lineWidth := runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if lineWidth+1+w <= width {
			b.WriteString(" ")
			b.WriteString(word)
			lineWidth += 1 + w
			continue
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(word)
		lineWidth = w
	}
	return b.String()
}

// FormatRepr renders a shortened representation of v. Representations
// at least maxLen runes long are cut in the middle so the beginning
// and end stay visible, separated by ellipsis.
func FormatRepr(v any, maxLen int, ellipsis string) string {
	s := fmt.Sprintf("%#v", v)
	r := []rune(s)
	if len(r) < maxLen {
		return s
	}
	half := maxLen / 2
	return fmt.Sprintf("%s %s %s", string(r[:half]), ellipsis, string(r[len(r)-half:]))
}

// terminalWidth resolves the width of the terminal behind stdout.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWrapWidth
}
