// Package cliutil provides small output helpers shared by the oasref commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// stderr is swappable so tests can capture diagnostic output.
var stderr io.Writer = os.Stderr

// Writef writes formatted output to w, reporting any write failure on stderr
// instead of returning it. Command output paths treat write errors as
// diagnostics rather than fatal conditions.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(stderr, "write error: %v\n", err)
	}
}

// Errf writes formatted diagnostic output to stderr. Commands keep stdout
// reserved for structured payloads so output can be piped.
func Errf(format string, args ...any) {
	Writef(stderr, format, args...)
}
