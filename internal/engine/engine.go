// Released under an MIT license. See LICENSE.

// Package engine drives cmb sessions.
//
// An engine owns the definition table for the life of a session. Nothing
// in the term, reader or parser packages retains the table between calls.
package engine

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/cmb/internal/reader"
	"github.com/michaelmacinnis/cmb/internal/reader/parser"
	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
)

// T (engine) holds the state of a session.
type T struct {
	defs   *defs.T
	system string
	trace  term.Tracer

	stderr io.Writer
	stdout io.Writer
}

// New creates a new engine with the combinators named in enabled.
// Output is written to stdout and notices to stderr. A nil tr disables
// tracing.
func New(enabled string, tr term.Tracer, stdout, stderr io.Writer) *T {
	return &T{
		defs:   defs.New(enabled),
		system: enabled,
		trace:  tr,
		stderr: stderr,
		stdout: stdout,
	}
}

// Evaluate processes one line of interactive input.
//
// Blank lines and comments are ignored. A definition adds a name to the
// session and Evaluate returns true. Any other line that parses is
// reduced and the result printed.
func (e *T) Evaluate(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || reader.Comment(line) {
		return false
	}

	if name, v, ok := parser.Assignment(line, e.defs, e.trace); ok {
		e.defs.Set(name, v)

		if !strings.ContainsRune(e.system, name) {
			e.system += string(name)
		}

		return true
	}

	if v, ok := parser.Parse(line, e.defs, e.trace); ok {
		s := term.Render(v)

		fmt.Fprintf(
			e.stdout, "Parsed `%s` of size %d into `%s` of size %d\n",
			line, utf8.RuneCountInString(line),
			s, utf8.RuneCountInString(s),
		)
	}

	return false
}

// Prompt returns the interactive prompt. It lists the enabled combinators
// followed by each name defined during the session.
func (e *T) Prompt() string {
	return ":" + e.system + ">"
}

// Source evaluates each line of the file at path as if it had been typed.
func (e *T) Source(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	for _, line := range strings.Split(string(body), "\n") {
		e.Evaluate(line)
	}

	return nil
}
