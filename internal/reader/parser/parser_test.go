// Released under an MIT license. See LICENSE.

package parser

import (
	"testing"

	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
	"github.com/stretchr/testify/require"
)

func all() *defs.T {
	return defs.New(term.Letters)
}

func standard() *defs.T {
	return defs.New("SK")
}

func check(t *testing.T, d *defs.T, s string) {
	t.Helper()

	v, ok := Parse(s, d, nil)
	require.True(t, ok, "parsing %q", s)

	p := term.Render(v)

	v, ok = Parse(p, d, nil)
	require.True(t, ok, "reparsing %q", p)

	r := term.Render(v)
	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func render(t *testing.T, d *defs.T, s string) string {
	t.Helper()

	v, ok := Parse(s, d, nil)
	require.True(t, ok, "parsing %q", s)

	return term.Render(v)
}

func TestAbsent(t *testing.T) {
	for _, s := range []string{"", "   ", "(x", "x)", "()", "x(y(z)", "(()x)"} {
		_, ok := Parse(s, standard(), nil)
		require.False(t, ok, "%q should not parse", s)
	}
}

func TestAssignment(t *testing.T) {
	name, v, ok := Assignment("  T =  S(KI) ", all(), nil)
	require.True(t, ok)
	require.Equal(t, 'T', name)
	require.Equal(t, "S(KI)", term.Render(v))

	name, v, ok = Assignment("K=S", standard(), nil)
	require.True(t, ok)
	require.Equal(t, 'K', name)
	require.Equal(t, term.T(term.S0{}), v)

	for _, s := range []string{"", "    ", "Kx", "K x = S", "K =", "K = (", "xy=z"} {
		_, _, ok := Assignment(s, standard(), nil)
		require.False(t, ok, "%q is not an assignment", s)
	}
}

func TestAssignmentDoesNotSeeItself(t *testing.T) {
	d := standard()

	name, v, ok := Assignment("x = xx", d, nil)
	require.True(t, ok)
	d.Set(name, v)

	require.Equal(t, "xx", term.Render(v))
	require.Equal(t, "xxy", render(t, d, "xy"))
}

func TestAtoms(t *testing.T) {
	for _, s := range term.Letters {
		require.Equal(t, string(s), render(t, all(), string(s)))
	}

	require.Equal(t, "I", render(t, standard(), "I"))
	require.Equal(t, term.T(term.Variable('I')), mustParse(t, standard(), "I"))
}

func TestDisabled(t *testing.T) {
	d := defs.New("K")

	require.Equal(t, "Sxyz", render(t, d, "Sxyz"))
	require.Equal(t, "S", render(t, d, "KSx"))
}

func TestNestedParentheses(t *testing.T) {
	d := standard()

	require.Equal(t, mustParse(t, d, "x"), mustParse(t, d, "((x))"))
	require.Equal(t, mustParse(t, d, "Kxy"), mustParse(t, d, "(K x) (y)"))
	require.Equal(t, "x(yz)", render(t, d, "x(y z)"))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"S",
		"S(Kx)",
		"S(K(SI))K",
		"B(CW)(SII)",
		"C(BS)(KK)",
		"W(Bx)",
		"x(Sy)(Kz)",
		"S(S(KS)K)(KI)",
	} {
		check(t, all(), s)
	}
}

func TestRules(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"Bxyz", "x(yz)"},
		{"Cxyz", "xzy"},
		{"Ix", "x"},
		{"Kxy", "x"},
		{"Sxyz", "xz(yz)"},
		{"Wxy", "xyy"},
		{"SKKx", "x"},
		{"S(K(SI))Kxy", "yx"},
		{"B(SI)Kx", "SI(Kx)"},
		{"B(SI)Kxy", "yx"},
	} {
		require.Equal(t, tc.out, render(t, all(), tc.in), tc.in)
	}
}

func TestSharedSubstitution(t *testing.T) {
	d := all()

	name, v, ok := Assignment("M = SII", d, nil)
	require.True(t, ok)
	d.Set(name, v)

	require.Equal(t, "SII", render(t, d, "M"))
	require.Equal(t, "xx", render(t, d, "Mx"))
	require.Equal(t, "SII", render(t, d, "M"))
}

func TestTrace(t *testing.T) {
	var records []string

	tr := term.Tracer(func(format string, args ...interface{}) {
		records = append(records, format)
	})

	v, ok := Parse("Sxyz", standard(), tr)
	require.True(t, ok)
	require.Equal(t, "xz(yz)", term.Render(v))
	require.NotEmpty(t, records)

	_, ok = Parse("x)", standard(), tr)
	require.False(t, ok)
}

func mustParse(t *testing.T, d *defs.T, s string) term.T {
	t.Helper()

	v, ok := Parse(s, d, nil)
	require.True(t, ok, "parsing %q", s)

	return v
}
