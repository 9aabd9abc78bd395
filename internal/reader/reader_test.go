// Released under an MIT license. See LICENSE.

package reader

import (
	"testing"

	"github.com/michaelmacinnis/cmb/internal/term"
	"github.com/michaelmacinnis/cmb/internal/type/defs"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, body string, d *defs.T) string {
	t.Helper()

	v, ok := File(body, d, nil)
	require.True(t, ok, "loading %q", body)

	return term.Render(v)
}

func TestComments(t *testing.T) {
	body := `
# identity
// built from S and K
-- and applied to x
	-- indented
I = SKK

Ix
`
	require.Equal(t, "x", load(t, body, defs.New("SK")))

	require.True(t, Comment("  # x"))
	require.False(t, Comment("x # y"))
}

func TestDefinitionsAccumulate(t *testing.T) {
	d := defs.New("SK")

	// T was defined before I so its I is a free variable.
	require.Equal(t, "Iyx", load(t, "T = S(K(SI))K\nI = SKK\nTxy\n", d))

	v, ok := d.Get('I')
	require.True(t, ok)
	require.Equal(t, "SKK", term.Render(v))

	v, ok = d.Get('T')
	require.True(t, ok)
	require.Equal(t, "S(K(SI))K", term.Render(v))
}

func TestFirstPayloadWins(t *testing.T) {
	d := defs.New("SK")

	require.Equal(t, "x", load(t, "Kxy\nSxyz\nZ = K\n", d))

	_, ok := d.Get('Z')
	require.False(t, ok)
}

func TestNoPayload(t *testing.T) {
	for _, body := range []string{"", "\n\n", "# only a comment", "I = SKK", "(x\nx)"} {
		_, ok := File(body, defs.New("SK"), nil)
		require.False(t, ok, "%q has no term", body)
	}
}

func TestRedefinition(t *testing.T) {
	v, ok := File("K = S\nKx", defs.New("SK"), nil)
	require.True(t, ok)
	require.Equal(t, term.T(term.S1{X: term.Variable('x')}), v)
}

func TestWindowsLineEndings(t *testing.T) {
	require.Equal(t, "x", load(t, "I = SKK\r\nIx\r\n", defs.New("SK")))
}
