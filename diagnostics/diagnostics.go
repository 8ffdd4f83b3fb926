// Package diagnostics represent utility methods for diagnostics messages
package diagnostics

import (
	"fmt"
	"io"
	"os"
)

// Output is where diagnostics are written
var Output io.Writer = os.Stderr

var exit = os.Exit

// Fatal prints a fatal error message and exits if err is not nil
func Fatal(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(Output, "Fatal: %s: %v\n", msg, err)
	exit(1)
}

// Warn prints a warning message if err is not nil
func Warn(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(Output, "Warning: %s: %v\n", msg, err)
}
