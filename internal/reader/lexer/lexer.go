// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for combinator terms.
//
// Like Go's text/template lexer, the scanner is a set of state functions
// each returning the next state. Only the outermost level of a term is
// scanned. A parenthesised group is returned as a single token holding the
// text between its parentheses and it is up to the parser to scan that
// text in turn.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/cmb/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	tokens []*token.T
}

// New creates a new T that scans text.
func New(text string) *T {
	return &T{
		bytes: text,
		state: skipSpace,
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if there are no more tokens.
// Once an Error token has been returned no further tokens are produced.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.index += w

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
}

// T states.

func scanGroup(l *T) action {
	depth := 1

	for {
		switch l.next() {
		case eof:
			l.emit(token.Error, "unmatched (")
			return nil
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				s := l.Text()
				l.emit(token.Group, s[1:len(s)-1])

				return skipSpace
			}
		}
	}
}

func scanSymbol(l *T) action {
	l.next()
	l.emit(token.Symbol, l.Text())

	return skipSpace
}

func skipSpace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case ' ':
			l.index += w
			l.skip()
		case '(':
			l.index += w
			return scanGroup
		case ')':
			l.index += w
			l.emit(token.Error, "unmatched )")
			return nil
		default:
			return scanSymbol
		}
	}
}
