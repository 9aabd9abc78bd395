// Released under an MIT license. See LICENSE.

/*
Cmb reduces expressions of combinatory logic.

Terms are built from the combinators S, K, I, W, C and B, single character
names defined with "name = term", and free variables. Juxtaposition is
left-associative application, so "Sxyz" is ((S x) y) z and reduces to
"xz(yz)".

	$ cmb -I
	:SKI>T = S(K(SI))K
	:SKIT>Txy
	Parsed `Txy` of size 3 into `yx` of size 2

A file named on the command line is read as if typed before the session
starts. In the filter modes a term given with -e, or loaded from a file of
definitions, is applied to each line of stdin or to all of stdin.

Cmb is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"

	"github.com/michaelmacinnis/cmb/internal/engine"
	"github.com/michaelmacinnis/cmb/internal/system/options"
	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/ui"
)

func main() {
	o := options.Parse()

	err := run(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cmb: "+err.Error())
		os.Exit(1)
	}
}

func run(o *options.T) error {
	var tr term.Tracer
	if o.Trace() {
		tr = term.Printer(os.Stdout)
	}

	e := engine.New(o.Enabled(), tr, os.Stdout, os.Stderr)

	if o.Mode() == options.Interpreter {
		if o.File() != "" {
			err := e.Source(o.File())
			if err != nil {
				return err
			}
		}

		return ui.Run(e, os.Stdin, o.Interactive())
	}

	f, err := e.Expression(o.Expr(), o.File())
	if err != nil {
		return err
	}

	if o.Mode() == options.LineFilter {
		return e.Lines(f, os.Stdin)
	}

	return e.Text(f, os.Stdin)
}
