// Released under an MIT license. See LICENSE.

package term

// Apply returns the term produced by applying head to arg.
//
// If head is one argument short of its combinator's arity the rewrite rule
// fires. Otherwise the argument is stored in the next saturation variant.
// Apply never fails.
func Apply(head, arg T, tr Tracer) T {
	r := apply(head, arg, tr)

	tr.applied(head, arg, r)

	return r
}

func apply(head, arg T, tr Tracer) T {
	switch h := head.(type) {
	case Variable:
		return Opaque(string(rune(h)) + arg.Arg())
	case Opaque:
		return Opaque(string(h) + arg.Arg())

	case I:
		return arg

	// S x y z = x z (y z)
	case S0:
		return S1{arg}
	case S1:
		return S2{h.X, arg}
	case S2:
		return Apply(Apply(h.X, arg, tr), Apply(h.Y, arg, tr), tr)

	// K x y = x
	case K0:
		return K1{arg}
	case K1:
		return h.X

	// W x y = x y y
	case W0:
		return W1{arg}
	case W1:
		return Apply(Apply(h.X, arg, tr), arg, tr)

	// C x y z = x z y
	case C0:
		return C1{arg}
	case C1:
		return C2{h.X, arg}
	case C2:
		return Apply(Apply(h.X, arg, tr), h.Y, tr)

	// B x y z = x (y z)
	case B0:
		return B1{arg}
	case B1:
		return B2{h.X, arg}
	case B2:
		return Apply(h.X, Apply(h.Y, arg, tr), tr)
	}

	// The marker method keeps other packages from adding term types.
	panic("unknown term type")
}
