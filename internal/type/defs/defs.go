// Released under an MIT license. See LICENSE.

// Package defs provides cmb's definition table.
package defs

import (
	"github.com/michaelmacinnis/cmb/internal/term"
)

// T (defs) maps single character names to terms.
type T struct {
	m map[rune]term.T
}

// New creates a new table binding each combinator letter in enabled to
// its unsaturated combinator. Letters that do not name a combinator are
// ignored.
func New(enabled string) *T {
	d := &T{m: map[rune]term.T{}}

	for _, r := range enabled {
		if c, ok := term.Combinator(r); ok {
			d.m[r] = c
		}
	}

	return d
}

// Get retrieves the term bound to the name k in the table d.
func (d *T) Get(k rune) (term.T, bool) {
	if d == nil {
		return nil, false
	}

	v, ok := d.m[k]

	return v, ok
}

// Set binds the name k to the term v in the table d.
// Any previous binding for k is replaced.
func (d *T) Set(k rune, v term.T) {
	d.m[k] = v
}
