// Released under an MIT license. See LICENSE.

package term

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/adapted"
)

// Tracer receives a record for every reduction step. A nil Tracer
// discards them.
type Tracer func(format string, args ...interface{})

// Printer returns a Tracer that writes each record as a line on w.
func Printer(w io.Writer) Tracer {
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

// Printf emits a record if tracing is enabled.
func (tr Tracer) Printf(format string, args ...interface{}) {
	if tr != nil {
		tr(format, args...)
	}
}

// Quote returns s in a form that makes spaces and control characters visible.
func Quote(s string) string {
	return adapted.CanonicalString(s)
}

func (tr Tracer) applied(head, arg, result T) {
	if tr == nil {
		return
	}

	tr(
		"%s applied to %s, resulting in %s",
		Quote(head.String()), Quote(arg.String()), Quote(result.String()),
	)
}
