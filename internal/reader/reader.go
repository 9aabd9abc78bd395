// Released under an MIT license. See LICENSE.

// Package reader loads combinator source files.
//
// A source file is zero or more definitions followed by exactly one term.
// Lines starting with "#", "//" or "--" are comments. Reading stops at the
// first line that is neither a comment nor a definition but does parse as
// a term. Anything after that line is ignored.
package reader

import (
	"strings"

	"github.com/michaelmacinnis/cmb/internal/reader/parser"
	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
)

var comments = []string{"#", "//", "--"} //nolint:gochecknoglobals

// File returns the term defined by body. Definitions are added to d as
// they are read. File returns false if body has no term.
func File(body string, d *defs.T, tr term.Tracer) (term.T, bool) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)

		if Comment(line) {
			continue
		}

		if name, v, ok := parser.Assignment(line, d, tr); ok {
			d.Set(name, v)

			continue
		}

		if v, ok := parser.Parse(line, d, tr); ok {
			return v, true
		}
	}

	return nil, false
}

// Comment returns true if line, with leading space removed, is a comment.
func Comment(line string) bool {
	line = strings.TrimLeft(line, " \t")

	for _, prefix := range comments {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}
