package termutil

import (
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"empty environment", map[string]string{}, "ascii"},
		{"utf8 from LANG", map[string]string{"LANG": "en_US.UTF-8"}, "utf-8"},
		{"LC_ALL beats LANG", map[string]string{"LANG": "en_US.UTF-8", "LC_ALL": "de_DE.ISO8859-1"}, "iso8859-1"},
		{"LC_CTYPE beats LANG", map[string]string{"LANG": "C", "LC_CTYPE": "en_US.UTF-8"}, "utf-8"},
		{"C locale", map[string]string{"LANG": "C"}, "ascii"},
		{"POSIX locale", map[string]string{"LC_ALL": "POSIX"}, "ascii"},
		{"modifier stripped", map[string]string{"LANG": "de_DE.ISO8859-15@euro"}, "iso8859-15"},
		{"no charset in locale", map[string]string{"LANG": "en_US"}, "ascii"},
		{"trailing dot", map[string]string{"LANG": "en_US."}, "ascii"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectEncoding(fakeEnv(tt.env)); got != tt.want {
				t.Errorf("detectEncoding() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanRender_UTF8(t *testing.T) {
	if !canRender("héllo ✔ 漢", "utf-8", nil) {
		t.Error("UTF-8 should render anything valid")
	}
	if canRender("bad \xff byte", "utf-8", nil) {
		t.Error("invalid UTF-8 should not render")
	}
}

func TestCanRender_ASCII(t *testing.T) {
	if !canRender("plain text", "ascii", nil) {
		t.Error("ASCII text should render in ASCII")
	}
	if canRender("café", "ascii", nil) {
		t.Error("non-ASCII text should not render in ASCII")
	}
	if canRender("✔", "ascii", nil) {
		t.Error("check mark should not render in ASCII")
	}
}

func TestCanRender_Latin1(t *testing.T) {
	enc := charmap.ISO8859_1
	if !canRender("café", "iso8859-1", enc) {
		t.Error("Latin-1 text should render in Latin-1")
	}
	if canRender("✔", "iso8859-1", enc) {
		t.Error("check mark should not render in Latin-1")
	}
}

func TestCanRender_PublicNeverPanics(t *testing.T) {
	for _, s := range []string{"", "plain", "✔", "\xff\xfe", "mixed ✔ \xff"} {
		_ = CanRender(s) // must not panic regardless of input
	}
}

func TestCanRender_Idempotent(t *testing.T) {
	for _, s := range []string{"plain", "✔ fancy"} {
		first := CanRender(s)
		for i := 0; i < 3; i++ {
			if CanRender(s) != first {
				t.Fatalf("CanRender(%q) changed between calls", s)
			}
		}
	}
}

func TestLocaleEscape_ASCII(t *testing.T) {
	got := localeEscape("café ✔", Replace, "ascii", nil)
	if got != "caf? ?" {
		t.Errorf("localeEscape = %q, want %q", got, "caf? ?")
	}

	got = localeEscape("café ✔", Ignore, "ascii", nil)
	if got != "caf " {
		t.Errorf("localeEscape ignore = %q, want %q", got, "caf ")
	}
}

func TestLocaleEscape_UTF8IsIdentity(t *testing.T) {
	s := "héllo ✔ 漢"
	if got := localeEscape(s, Replace, "utf-8", nil); got != s {
		t.Errorf("localeEscape = %q, want input unchanged", got)
	}
}

func TestLocaleEscape_Latin1(t *testing.T) {
	enc := charmap.ISO8859_1
	got := localeEscape("café ✔", Replace, "iso8859-1", enc)
	if got != "café ?" {
		t.Errorf("localeEscape = %q, want %q", got, "café ?")
	}
}

func TestLocaleEscape_Idempotent(t *testing.T) {
	inputs := []string{"plain", "café ✔ 漢", "\xff broken"}
	for _, s := range inputs {
		for _, charset := range []string{"ascii", "utf-8", "iso8859-1"} {
			var codec encoding.Encoding
			if charset == "iso8859-1" {
				codec = charmap.ISO8859_1
			}
			once := localeEscape(s, Replace, charset, codec)
			twice := localeEscape(once, Replace, charset, codec)
			if once != twice {
				t.Errorf("localeEscape not idempotent for %q in %s: %q then %q", s, charset, once, twice)
			}
		}
	}
}

func TestLookupEncoding(t *testing.T) {
	if lookupEncoding("utf-8") != nil {
		t.Error("utf-8 needs no codec")
	}
	if lookupEncoding("ascii") != nil {
		t.Error("ascii needs no codec")
	}
	if lookupEncoding("iso8859-1") == nil {
		t.Error("expected a codec for iso8859-1")
	}
	if lookupEncoding("no-such-charset") != nil {
		t.Error("unknown charsets degrade to ASCII semantics")
	}
}
