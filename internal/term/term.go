// Released under an MIT license. See LICENSE.

// Package term provides the combinator terms manipulated by cmb.
//
// A term is one of a closed set of types. Free variables and chains headed
// by free variables are atoms as far as reduction is concerned. Each
// primitive combinator is represented by a family of types, one for each
// number of arguments it can hold before its rewrite rule fires. For
// example, S takes three arguments and so S0, S1 and S2 exist. Applying an
// S2 to one more argument performs the substitution.
package term

// T (term) is a combinatory logic expression.
type T interface {
	// Arg returns the text for t when it appears as an argument.
	Arg() string

	// String returns the text for t when it appears in head position.
	String() string

	term()
}

// Variable is a free symbol that has not been applied to anything.
type Variable rune

// Opaque is an application chain headed by a free variable. Only its
// text is kept so no rewrite rule can ever fire on it again.
type Opaque string

// S0 is S with no arguments.
type S0 struct{}

// S1 is S with one argument.
type S1 struct{ X T }

// S2 is S with two arguments.
type S2 struct{ X, Y T }

// K0 is K with no arguments.
type K0 struct{}

// K1 is K with one argument.
type K1 struct{ X T }

// W0 is W with no arguments.
type W0 struct{}

// W1 is W with one argument.
type W1 struct{ X T }

// C0 is C with no arguments.
type C0 struct{}

// C1 is C with one argument.
type C1 struct{ X T }

// C2 is C with two arguments.
type C2 struct{ X, Y T }

// B0 is B with no arguments.
type B0 struct{}

// B1 is B with one argument.
type B1 struct{ X T }

// B2 is B with two arguments.
type B2 struct{ X, Y T }

// I is the identity combinator.
type I struct{}

// Letters lists every primitive combinator in canonical order.
const Letters = "CWBSKI"

// Combinator returns the unsaturated combinator named by r.
func Combinator(r rune) (T, bool) {
	switch r {
	case 'B':
		return B0{}, true
	case 'C':
		return C0{}, true
	case 'I':
		return I{}, true
	case 'K':
		return K0{}, true
	case 'S':
		return S0{}, true
	case 'W':
		return W0{}, true
	}

	return nil, false
}

// Render returns the canonical text for t.
func Render(t T) string {
	return t.String()
}

// Wrapped returns the text for t as a non-head argument.
// Compound terms are enclosed in parentheses.
func Wrapped(t T) string {
	return t.Arg()
}

func (v Variable) Arg() string    { return string(rune(v)) }
func (v Variable) String() string { return string(rune(v)) }

func (o Opaque) Arg() string    { return "(" + string(o) + ")" }
func (o Opaque) String() string { return string(o) }

func (S0) Arg() string      { return "S" }
func (S0) String() string   { return "S" }
func (s S1) Arg() string    { return enclose(s) }
func (s S1) String() string { return "S" + s.X.Arg() }
func (s S2) Arg() string    { return enclose(s) }
func (s S2) String() string { return "S" + s.X.Arg() + s.Y.Arg() }

func (K0) Arg() string      { return "K" }
func (K0) String() string   { return "K" }
func (k K1) Arg() string    { return enclose(k) }
func (k K1) String() string { return "K" + k.X.Arg() }

func (W0) Arg() string      { return "W" }
func (W0) String() string   { return "W" }
func (w W1) Arg() string    { return enclose(w) }
func (w W1) String() string { return "W" + w.X.Arg() }

func (C0) Arg() string      { return "C" }
func (C0) String() string   { return "C" }
func (c C1) Arg() string    { return enclose(c) }
func (c C1) String() string { return "C" + c.X.Arg() }
func (c C2) Arg() string    { return enclose(c) }
func (c C2) String() string { return "C" + c.X.Arg() + c.Y.Arg() }

func (B0) Arg() string      { return "B" }
func (B0) String() string   { return "B" }
func (b B1) Arg() string    { return enclose(b) }
func (b B1) String() string { return "B" + b.X.Arg() }
func (b B2) Arg() string    { return enclose(b) }
func (b B2) String() string { return "B" + b.X.Arg() + b.Y.Arg() }

func (I) Arg() string    { return "I" }
func (I) String() string { return "I" }

func (Variable) term() {}
func (Opaque) term()   {}
func (S0) term()       {}
func (S1) term()       {}
func (S2) term()       {}
func (K0) term()       {}
func (K1) term()       {}
func (W0) term()       {}
func (W1) term()       {}
func (C0) term()       {}
func (C1) term()       {}
func (C2) term()       {}
func (B0) term()       {}
func (B1) term()       {}
func (B2) term()       {}
func (I) term()        {}

func enclose(t T) string {
	return "(" + t.String() + ")"
}
