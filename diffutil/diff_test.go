package diffutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgvorg1/xy-wasabi/colorutil"
)

func TestDiffStrings_EqualIsIdentity(t *testing.T) {
	for _, s := range []string{"", "one line", "a\nb\nc", "trailing\n"} {
		got := DiffStrings(s, s)
		assert.Equal(t, s, got)
		assert.NotContains(t, got, "\x1b[", "equal inputs must carry no escapes")
	}
}

func TestDiffStrings_ReplaceRendersInsertThenDelete(t *testing.T) {
	got := DiffStrings("x\ny", "x\nz", WithSymbols())

	// Default styles: black (16) foreground, green (2) insert
	// background, red (1) delete background.
	want := "x\n" +
		"\x1b[38;5;16;48;5;2m+ z\x1b[0m\n" +
		"\x1b[38;5;16;48;5;1m- y\x1b[0m"
	assert.Equal(t, want, got)
}

func TestDiffStrings_NoSymbolsByDefault(t *testing.T) {
	got := DiffStrings("a", "b")
	want := "\x1b[38;5;16;48;5;2mb\x1b[0m\n" +
		"\x1b[38;5;16;48;5;1ma\x1b[0m"
	assert.Equal(t, want, got)
}

func TestDiffStrings_PureInsert(t *testing.T) {
	got := DiffStrings("a\nc", "a\nb\nc", WithSymbols())
	want := "a\n" +
		"\x1b[38;5;16;48;5;2m+ b\x1b[0m\n" +
		"c"
	assert.Equal(t, want, got)
}

func TestDiffStrings_PureDelete(t *testing.T) {
	got := DiffStrings("a\nb\nc", "a\nc", WithSymbols())
	want := "a\n" +
		"\x1b[38;5;16;48;5;1m- b\x1b[0m\n" +
		"c"
	assert.Equal(t, want, got)
}

func TestDiffStrings_CustomColors(t *testing.T) {
	got := DiffStrings("a", "b",
		WithForeground(colorutil.White),
		WithBackgrounds(colorutil.Index(22), colorutil.Index(52)),
	)
	want := "\x1b[38;5;7;48;5;22mb\x1b[0m\n" +
		"\x1b[38;5;7;48;5;52ma\x1b[0m"
	assert.Equal(t, want, got)
}

func TestDiffStrings_Deterministic(t *testing.T) {
	a := "one\ntwo\nthree\nfour"
	b := "one\n2\nthree\n4\nfive"
	first := DiffStrings(a, b, WithSymbols())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DiffStrings(a, b, WithSymbols()))
	}
}

func TestOpcodes_PartitionBothInputs(t *testing.T) {
	cases := []struct{ a, b string }{
		{"a\nb\nc", "a\nx\nc"},
		{"", "a\nb"},
		{"a\nb", ""},
		{"same\nsame", "same\nsame"},
		{"1\n2\n3\n4\n5", "1\n3\n5\n6"},
		{"x", "y"},
	}
	for _, tc := range cases {
		aLines := strings.Split(tc.a, "\n")
		bLines := strings.Split(tc.b, "\n")
		ops := opcodes(aLines, bLines)

		ai, bi := 0, 0
		for _, op := range ops {
			// Ranges are contiguous and ordered.
			require.Equal(t, ai, op.a0, "gap in a for %q -> %q", tc.a, tc.b)
			require.Equal(t, bi, op.b0, "gap in b for %q -> %q", tc.a, tc.b)
			require.LessOrEqual(t, op.a0, op.a1)
			require.LessOrEqual(t, op.b0, op.b1)
			switch op.kind {
			case opEqual:
				require.Equal(t, op.a1-op.a0, op.b1-op.b0, "equal ranges must have equal length")
				assert.Equal(t, aLines[op.a0:op.a1], bLines[op.b0:op.b1])
			case opInsert:
				require.Equal(t, op.a0, op.a1, "insert covers no lines of a")
			case opDelete:
				require.Equal(t, op.b0, op.b1, "delete covers no lines of b")
			}
			ai, bi = op.a1, op.b1
		}
		// Every line of both inputs is covered.
		require.Equal(t, len(aLines), ai, "a not fully partitioned for %q -> %q", tc.a, tc.b)
		require.Equal(t, len(bLines), bi, "b not fully partitioned for %q -> %q", tc.a, tc.b)
	}
}

func TestDiffStrings_RepeatedLines(t *testing.T) {
	// Interning must keep identical lines identical and distinct
	// lines distinct.
	a := "dup\nunique\ndup"
	b := "dup\nchanged\ndup"
	got := DiffStrings(a, b, WithSymbols())
	assert.True(t, strings.HasPrefix(got, "dup\n"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "\ndup"), "got %q", got)
	assert.Contains(t, got, "+ changed")
	assert.Contains(t, got, "- unique")
}
