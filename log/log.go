package log

import (
	"fmt"
	"io"
	"os"
)

var (
	// CrashOnError makes Err exit the program after printing
	CrashOnError = false

	// Out is where diagnostics are written
	Out io.Writer = os.Stderr
)

const prefix = "smallstep: "

// Err prints a diagnostic to Out according to format.  It also prepends the
// program name and appends a newline.  This is much like the errx(3) function
// from C unless CrashOnError is false in which case this will act like
// warnx(3).
func Err(format string, args ...any) {
	fmt.Fprintf(Out, prefix+format+"\n", args...)

	if CrashOnError {
		os.Exit(1)
	}
}

// Warn is Err that never exits
func Warn(format string, args ...any) {
	fmt.Fprintf(Out, prefix+format+"\n", args...)
}

// Trace writes one line per machine step to Out.  It is meant to be used as
// the Trace hook of a vm.Machine.
func Trace[T fmt.Stringer](step T) {
	fmt.Fprintln(Out, step)
}
