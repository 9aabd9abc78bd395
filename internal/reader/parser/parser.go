// Released under an MIT license. See LICENSE.

// Package parser turns text into combinator terms.
//
// Juxtaposition is left-associative application: "Sxyz" is ((S x) y) z.
// Each token is applied to the term accumulated so far as soon as it is
// read, so reduction happens during parsing.
package parser

import (
	"github.com/michaelmacinnis/cmb/internal/reader/lexer"
	"github.com/michaelmacinnis/cmb/internal/reader/token"
	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
)

// Parse converts text into a term using the definitions in d.
//
// A rune bound in d is replaced by its term. Any other rune, other than
// space and parentheses, is a free variable. Parse returns false if text
// is blank, if its parentheses are unbalanced, or if a group is empty.
func Parse(text string, d *defs.T, tr term.Tracer) (term.T, bool) {
	l := lexer.New(text)

	var acc term.T

	for t := l.Token(); t != nil; t = l.Token() {
		var v term.T

		switch {
		case t.Is(token.Group):
			g, ok := Parse(t.Value(), d, tr)
			if !ok {
				return nil, false
			}

			v = g
		case t.Is(token.Symbol):
			v = symbol(t.Rune(), d)
		default:
			tr.Printf("parse error in %s: %s", term.Quote(text), t.Value())

			return nil, false
		}

		if acc == nil {
			acc = v
		} else {
			acc = term.Apply(acc, v, tr)
		}
	}

	return acc, acc != nil
}

// Assignment recognizes lines of the form "name = term".
//
// The name is the first non-space rune. Only spaces may separate it from
// the '='. The term is parsed with d as it is, so a definition cannot
// refer to itself. It is up to the caller to add the new binding.
func Assignment(line string, d *defs.T, tr term.Tracer) (rune, term.T, bool) {
	tr.Printf("checking for assignment in %s", term.Quote(line))

	name, rest, ok := header(line)
	if !ok {
		return 0, nil, false
	}

	tr.Printf("name: %c", name)

	v, ok := Parse(rest, d, tr)
	if !ok {
		return 0, nil, false
	}

	return name, v, true
}

func header(line string) (name rune, rest string, ok bool) {
	named := false

	for i, r := range line {
		switch {
		case r == ' ':
			continue
		case !named:
			name = r
			named = true
		case r == '=':
			return name, line[i+1:], true
		default:
			return 0, "", false
		}
	}

	return 0, "", false
}

func symbol(r rune, d *defs.T) term.T {
	if v, ok := d.Get(r); ok {
		return v
	}

	return term.Variable(r)
}
