// Released under an MIT license. See LICENSE.

// Package token is shared by the cmb lexer and parser.
package token

import (
	"strconv"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	value string
}

type token = T

// Token classes.
const (
	Error Class = iota
	Group
	Symbol
)

// New creates a new token.
func New(class Class, value string) *token {
	return &token{
		class: class,
		value: value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Group:
		return "Group"
	case Symbol:
		return "Symbol"
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Rune returns the first rune of the token's value.
// This is the entire value for a Symbol.
func (t *token) Rune() rune {
	for _, r := range t.value {
		return r
	}

	return 0
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.class.String() + ")"
}

// Value returns the token's string value.
//
// For a Group this is the text between the outermost parentheses. For an
// Error it is a description of the problem.
func (t *token) Value() string {
	return t.value
}
