// Released under an MIT license. See LICENSE.

package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/cmb/internal/reader"
	"github.com/michaelmacinnis/cmb/internal/reader/parser"
	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
)

var (
	// ErrNoExpression indicates that neither the expression nor the file
	// supplied a term.
	ErrNoExpression = errors.New("no valid expression was supplied")

	// ErrNoFilter indicates that a filter mode was started without an
	// expression or a file.
	ErrNoFilter = errors.New(
		"the filter modes must be supplied a filter to apply via the -e option or a FILE",
	)
)

// Expression returns the filter term given by expr or by the source file
// at path. An empty string means the option was not supplied.
//
// If both are supplied and both produce a term, expr wins and a notice is
// written to stderr. Definitions in the file are added to the session.
func (e *T) Expression(expr, path string) (term.T, error) {
	if expr == "" && path == "" {
		return nil, ErrNoFilter
	}

	var (
		arg, file     term.T
		argOk, fileOk bool
	)

	if expr != "" {
		arg, argOk = parser.Parse(expr, e.defs, e.trace)
	}

	if path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading filter: %w", err)
		}

		file, fileOk = reader.File(string(body), e.defs, e.trace)
	}

	switch {
	case argOk && fileOk:
		fmt.Fprintln(e.stderr, "expr and file options are both valid, using expr option")

		return arg, nil
	case argOk:
		return arg, nil
	case fileOk:
		return file, nil
	}

	return nil, ErrNoExpression
}

// Lines applies f to each line read from r and writes each result.
// Lines are parsed without definitions. A line that does not parse
// produces f itself.
func (e *T) Lines(f term.T, r io.Reader) error {
	b := bufio.NewReader(r)

	for {
		line, err := b.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")

			fmt.Fprintln(e.stdout, term.Render(e.filter(f, line)))
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// Text applies f once to everything read from r and writes the result.
func (e *T) Text(f term.T, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintln(e.stdout, term.Render(e.filter(f, strings.TrimSpace(string(b)))))

	return nil
}

func (e *T) filter(f term.T, text string) term.T {
	v, ok := parser.Parse(text, defs.New(""), e.trace)
	if !ok {
		return f
	}

	return term.Apply(f, v, e.trace)
}
