// Package diffutil renders human-readable, color-coded line diffs
// between two strings.
//
// DiffStrings aligns the two inputs line by line and emits unchanged
// lines as-is, inserted lines on a green background, and deleted
// lines on a red background (black foreground throughout, all
// overridable):
//
//	fmt.Println(diffutil.DiffStrings(before, after, diffutil.WithSymbols()))
//
// Replaced regions render their insertions before their deletions,
// matching the order a reader scans: what the text says now, then
// what it used to say.
package diffutil
