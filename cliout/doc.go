// Package cliout provides styled status messages and interactive
// prompts for CLI tools.
//
// # Messages
//
// Good, Fail, Warn, and Info return icon-prefixed, colored one-liners
// for the caller to print:
//
//	import "github.com/lgvorg1/xy-wasabi/cliout"
//
//	fmt.Println(cliout.Good("installed %d packages", n))
//	fmt.Println(cliout.Fail("download failed: %v", err))
//
// Icons degrade to ASCII ([+], [x], [!], [i]) on terminals whose
// encoding cannot render the Unicode set, and color is dropped
// entirely when ANSI support is not detected (see the termutil
// package). The worst case is plain ASCII text, never an error.
//
// # Prompts
//
// GetInput writes a wrapped prompt to stdout and reads one line from
// stdin. The default value, when given, is displayed but never
// substituted; callers apply it when the returned string is empty:
//
//	name, err := cliout.GetInput("Project name", "demo")
//	if err != nil {
//	    return err
//	}
//	if name == "" {
//	    name = "demo"
//	}
//
// Confirm asks a yes/no question, and GetPassword reads a line with
// terminal echo disabled. None of the prompts have timeout or
// cancellation semantics; callers needing them must wrap the calls.
package cliout
