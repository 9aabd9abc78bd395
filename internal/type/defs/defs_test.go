// Released under an MIT license. See LICENSE.

package defs

import (
	"testing"

	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, r := range term.Letters {
		_, ok := New("").Get(r)
		require.False(t, ok)
	}

	d := New("SKxy")

	s, ok := d.Get('S')
	require.True(t, ok)
	require.Equal(t, term.T(term.S0{}), s)

	k, ok := d.Get('K')
	require.True(t, ok)
	require.Equal(t, term.T(term.K0{}), k)

	for _, r := range "IWCBxy" {
		_, ok = d.Get(r)
		require.False(t, ok, "%c should be free", r)
	}
}

func TestSet(t *testing.T) {
	d := New("SK")

	d.Set('K', term.S0{})
	d.Set('x', term.Variable('y'))

	k, _ := d.Get('K')
	require.Equal(t, term.T(term.S0{}), k)

	x, ok := d.Get('x')
	require.True(t, ok)
	require.Equal(t, "y", term.Render(x))
}

func TestNil(t *testing.T) {
	var d *T

	_, ok := d.Get('S')
	require.False(t, ok)
}
