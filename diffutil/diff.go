package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lgvorg1/xy-wasabi/colorutil"
)

// Symbols prefixed to changed lines when WithSymbols is set.
const (
	InsertSymbol = "+"
	DeleteSymbol = "-"
)

type config struct {
	fg         colorutil.Color
	bgInsert   colorutil.Color
	bgDelete   colorutil.Color
	addSymbols bool
}

// Option adjusts diff rendering.
type Option func(*config)

// WithForeground sets the foreground color applied to changed lines.
func WithForeground(c colorutil.Color) Option {
	return func(cfg *config) { cfg.fg = c }
}

// WithBackgrounds sets the background colors for inserted and deleted
// lines.
func WithBackgrounds(insert, del colorutil.Color) Option {
	return func(cfg *config) {
		cfg.bgInsert = insert
		cfg.bgDelete = del
	}
}

// WithSymbols prefixes inserted lines with "+ " and deleted lines
// with "- ".
func WithSymbols() Option {
	return func(cfg *config) { cfg.addSymbols = true }
}

// DiffStrings compares a and b line by line and renders a colored
// diff: unchanged lines are emitted unstyled, lines inserted by b
// with the insert background, lines deleted from a with the delete
// background. Defaults are a black foreground on green (insert) and
// red (delete). DiffStrings of two equal strings is the identity.
func DiffStrings(a, b string, opts ...Option) string {
	cfg := config{
		fg:       colorutil.Black,
		bgInsert: colorutil.Green,
		bgDelete: colorutil.Red,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")

	insertStyle := colorutil.Style{Foreground: cfg.fg, Background: cfg.bgInsert}
	deleteStyle := colorutil.Style{Foreground: cfg.fg, Background: cfg.bgDelete}

	var output []string
	var ins, dels []string

	// A replaced region renders its insertions before its deletions.
	flush := func() {
		for _, line := range ins {
			if cfg.addSymbols {
				line = InsertSymbol + " " + line
			}
			output = append(output, colorutil.Colorize(line, insertStyle))
		}
		for _, line := range dels {
			if cfg.addSymbols {
				line = DeleteSymbol + " " + line
			}
			output = append(output, colorutil.Colorize(line, deleteStyle))
		}
		ins, dels = nil, nil
	}

	for _, op := range opcodes(aLines, bLines) {
		switch op.kind {
		case opEqual:
			flush()
			output = append(output, aLines[op.a0:op.a1]...)
		case opInsert:
			ins = append(ins, bLines[op.b0:op.b1]...)
		case opDelete:
			dels = append(dels, aLines[op.a0:op.a1]...)
		}
	}
	flush()

	return strings.Join(output, "\n")
}

type opKind int

const (
	opEqual opKind = iota
	opInsert
	opDelete
)

// opcode covers the contiguous line range [a0,a1) in the first input
// and [b0,b1) in the second. The opcodes for a pair of inputs are
// ordered and partition both inputs exactly.
type opcode struct {
	kind   opKind
	a0, a1 int
	b0, b1 int
}

// opcodes aligns two line slices with go-diff's rune-mode matcher:
// every distinct line is interned as a rune, so a character diff over
// the interned strings is a line diff over the inputs. The matcher is
// deterministic for identical inputs.
func opcodes(a, b []string) []opcode {
	ra, rb := intern(a, b)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(ra, rb, false))

	var ops []opcode
	ai, bi := 0, 0
	for _, d := range diffs {
		n := len([]rune(d.Text))
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			ops = append(ops, opcode{opEqual, ai, ai + n, bi, bi + n})
			ai += n
			bi += n
		case diffmatchpatch.DiffInsert:
			ops = append(ops, opcode{opInsert, ai, ai, bi, bi + n})
			bi += n
		case diffmatchpatch.DiffDelete:
			ops = append(ops, opcode{opDelete, ai, ai + n, bi, bi})
			ai += n
		}
	}
	return ops
}

// intern maps every distinct line across both inputs to a unique
// rune. The surrogate range is skipped: go-diff round-trips rune
// slices through strings, where surrogates do not survive.
func intern(a, b []string) ([]rune, []rune) {
	ids := make(map[string]rune, len(a)+len(b))
	next := rune(1)
	assign := func(lines []string) []rune {
		rs := make([]rune, len(lines))
		for i, line := range lines {
			id, ok := ids[line]
			if !ok {
				id = next
				ids[line] = id
				next++
				if next == 0xD800 {
					next = 0xE000
				}
			}
			rs[i] = id
		}
		return rs
	}
	return assign(a), assign(b)
}
