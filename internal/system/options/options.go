// Released under an MIT license. See LICENSE.

// Package options parses cmb's command line.
package options

import (
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/cmb/internal/term"
)

// Mode is the way cmb consumes input.
type Mode int

// Modes.
const (
	Interpreter Mode = iota
	LineFilter
	TextFilter
)

// T (options) holds the parsed command line.
type T struct {
	enabled     string
	expr        string
	file        string
	interactive bool
	mode        Mode
	trace       bool
}

const version = "cmb 0.1.0"

const usage = `cmb

Usage:
  cmb [options] interpreter
  cmb [options] line-filter [FILE]
  cmb [options] text-filter [FILE]
  cmb [options] [FILE]
  cmb -h
  cmb -v

Arguments:
  FILE  Source file of definitions followed by the filter expression.

Options:
  -S                  Disable the S combinator.
  -K                  Disable the K combinator.
  -W                  Enable the W combinator.
  -C                  Enable the C combinator.
  -B                  Enable the B combinator.
  -I                  Enable the I combinator.
  -e, --expr=EXPR     Filter expression.
  -t, --trace         Print every reduction step.
  -h, --help          Display this help.
  -v, --version       Print cmb version.

The interpreter is the default mode. The filter modes apply the expression
given by -e or FILE to each line of stdin (line-filter) or to all of stdin
(text-filter). A disabled combinator's letter is an ordinary variable.
`

// Parse parses the process's command line. It exits on usage errors and
// after printing help or the version.
func Parse() *T {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	o, err := parse(p, os.Args[1:])
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	o.interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd())

	return o
}

func parse(p *docopt.Parser, argv []string) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.expr, _ = opts.String("--expr")
	o.file, _ = opts.String("FILE")
	o.trace, _ = opts.Bool("--trace")

	if lf, _ := opts.Bool("line-filter"); lf {
		o.mode = LineFilter
	} else if tf, _ := opts.Bool("text-filter"); tf {
		o.mode = TextFilter
	}

	var b strings.Builder

	for _, r := range term.Letters {
		set, _ := opts.Bool("-" + string(r))

		// S and K are on unless disabled. The others are opt-in.
		if set != (r == 'S' || r == 'K') {
			b.WriteRune(r)
		}
	}

	o.enabled = b.String()

	return o, nil
}

// Enabled returns the letters of the enabled combinators in canonical order.
func (o *T) Enabled() string {
	return o.enabled
}

// Expr returns the filter expression or "" if none was given.
func (o *T) Expr() string {
	return o.expr
}

// File returns the path of the source file or "" if none was given.
func (o *T) File() string {
	return o.file
}

// Interactive returns true if stdin is a terminal.
func (o *T) Interactive() bool {
	return o.interactive
}

// Mode returns the selected mode.
func (o *T) Mode() Mode {
	return o.mode
}

// Trace returns true if reduction steps should be printed.
func (o *T) Trace() bool {
	return o.trace
}
