package termutil

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// The output charset is resolved once at process start and treated as
// a process-wide constant.
var (
	outputEncoding = detectEncoding(os.Getenv)
	outputEncoder  = lookupEncoding(outputEncoding)
)

// ErrorPolicy controls how LocaleEscape handles characters the output
// encoding cannot represent.
type ErrorPolicy int

const (
	// Replace substitutes "?" for unencodable characters.
	Replace ErrorPolicy = iota
	// Ignore drops unencodable characters.
	Ignore
)

// Encoding returns the charset name detected for the output stream at
// process start. "ascii" when the locale does not name one.
func Encoding() string {
	return outputEncoding
}

// CanRender reports whether s encodes losslessly into the detected
// output charset. Encoding failures of any kind report false.
func CanRender(s string) bool {
	return canRender(s, outputEncoding, outputEncoder)
}

// LocaleEscape mangles characters the detected output encoding cannot
// represent, substituting "?", for terminals without full Unicode
// support. Idempotent under a fixed charset.
func LocaleEscape(s string) string {
	return LocaleEscapeWith(s, Replace)
}

// LocaleEscapeWith is LocaleEscape with an explicit error policy.
func LocaleEscapeWith(s string, policy ErrorPolicy) string {
	return localeEscape(s, policy, outputEncoding, outputEncoder)
}

// detectEncoding resolves the output charset from the locale
// environment: LC_ALL beats LC_CTYPE beats LANG, and the charset is
// the part after ".", with any "@modifier" stripped. A locale that
// names no charset, and the C/POSIX locales, fall back to ASCII.
func detectEncoding(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := getenv(key)
		if locale == "" {
			continue
		}
		if locale == "C" || locale == "POSIX" {
			return "ascii"
		}
		charset := locale
		if i := strings.IndexByte(charset, '.'); i >= 0 {
			charset = charset[i+1:]
		} else {
			return "ascii"
		}
		if i := strings.IndexByte(charset, '@'); i >= 0 {
			charset = charset[:i]
		}
		if charset == "" {
			return "ascii"
		}
		return strings.ToLower(charset)
	}
	return "ascii"
}

// lookupEncoding maps a charset name to its encoding. UTF-8 and ASCII
// are handled without a codec; unknown names degrade to the nil codec
// and get ASCII semantics.
func lookupEncoding(name string) encoding.Encoding {
	if isUTF8(name) || isASCII(name) {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// Locales spell Latin charsets "ISO8859-N"; the registry
		// wants "ISO-8859-N".
		if rest, ok := strings.CutPrefix(name, "iso8859"); ok {
			enc, err = ianaindex.IANA.Encoding("iso-8859" + rest)
		}
	}
	if err != nil || enc == nil {
		return nil
	}
	return enc
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return true
	}
	return false
}

func isASCII(name string) bool {
	switch strings.ToLower(name) {
	case "ascii", "us-ascii", "ansi_x3.4-1968":
		return true
	}
	return false
}

func canRender(s, charset string, enc encoding.Encoding) bool {
	switch {
	case isUTF8(charset):
		return utf8.ValidString(s)
	case enc != nil:
		_, err := enc.NewEncoder().String(s)
		return err == nil
	default:
		for _, r := range s {
			if r >= utf8.RuneSelf {
				return false
			}
		}
		return utf8.ValidString(s)
	}
}

func localeEscape(s string, policy ErrorPolicy, charset string, enc encoding.Encoding) string {
	switch {
	case isUTF8(charset):
		if utf8.ValidString(s) {
			return s
		}
		if policy == Ignore {
			return strings.ToValidUTF8(s, "")
		}
		return strings.ToValidUTF8(s, "?")
	case enc != nil:
		return escapeWithEncoder(s, policy, enc)
	default:
		return escapeASCII(s, policy)
	}
}

// escapeWithEncoder round-trips s through enc one rune at a time so
// unencodable runes can be substituted or dropped without losing the
// rest of the string.
func escapeWithEncoder(s string, policy ErrorPolicy, enc encoding.Encoding) string {
	// Fast path: everything survives, round-trip whole.
	if encoded, err := enc.NewEncoder().String(s); err == nil {
		if decoded, err := enc.NewDecoder().String(encoded); err == nil {
			return decoded
		}
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		encoded, err := enc.NewEncoder().String(string(r))
		if err != nil {
			if policy == Replace {
				b.WriteByte('?')
			}
			continue
		}
		decoded, err := enc.NewDecoder().String(encoded)
		if err != nil {
			if policy == Replace {
				b.WriteByte('?')
			}
			continue
		}
		b.WriteString(decoded)
	}
	return b.String()
}

func escapeASCII(s string, policy ErrorPolicy) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			continue
		}
		if policy == Replace {
			b.WriteByte('?')
		}
	}
	return b.String()
}
