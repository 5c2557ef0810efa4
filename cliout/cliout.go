package cliout

import (
	"fmt"

	"github.com/lgvorg1/xy-wasabi/colorutil"
	"github.com/lgvorg1/xy-wasabi/termutil"
)

// Message levels. Each level has an icon and a palette color of the
// same name.
const (
	LevelGood = "good"
	LevelFail = "fail"
	LevelWarn = "warn"
	LevelInfo = "info"
)

// Unicode icons per message level.
var icons = map[string]string{
	LevelGood: "✔",
	LevelFail: "✘",
	LevelWarn: "⚠",
	LevelInfo: "ℹ",
}

// ASCII fallbacks for terminals that cannot render the Unicode set.
var asciiIcons = map[string]string{
	LevelGood: "[+]",
	LevelFail: "[x]",
	LevelWarn: "[!]",
	LevelInfo: "[i]",
}

// Icon returns the icon for a message level, falling back to ASCII
// when the terminal encoding cannot render the Unicode one. Unknown
// levels have no icon.
func Icon(level string) string {
	icon, ok := icons[level]
	if !ok {
		return ""
	}
	if termutil.CanRender(icon) {
		return icon
	}
	return asciiIcons[level]
}

// Good formats a success message: green, prefixed with a check mark.
func Good(format string, args ...any) string {
	return message(LevelGood, format, args...)
}

// Fail formats a failure message: red, prefixed with a cross.
func Fail(format string, args ...any) string {
	return message(LevelFail, format, args...)
}

// Warn formats a warning message: yellow, prefixed with a warning
// sign.
func Warn(format string, args ...any) string {
	return message(LevelWarn, format, args...)
}

// Info formats an informational message: blue, prefixed with an info
// sign.
func Info(format string, args ...any) string {
	return message(LevelInfo, format, args...)
}

func message(level, format string, args ...any) string {
	text := Icon(level) + " " + fmt.Sprintf(format, args...)
	if !termutil.SupportsANSI() {
		return text
	}
	return colorutil.Colorize(text, colorutil.Style{Foreground: colorutil.Name(level)})
}
