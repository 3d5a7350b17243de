package ideal

import "fano-scheme/mpoly"

// Quotient is a polynomial ring modulo an ideal. The zero ideal gives the
// ring itself. Elements are represented by their normal form under the
// modulus' reduced Groebner basis, which makes representatives unique.
type Quotient struct {
	Ring *mpoly.Ring
	Mod  *Ideal
}

// NewQuotient builds R/I. I must live in r.
func NewQuotient(r *mpoly.Ring, I *Ideal) *Quotient {
	if I == nil {
		I = Zero(r)
	}
	if I.Ring != r {
		panic("ideal: quotient modulus from a different ring")
	}
	return &Quotient{Ring: r, Mod: I}
}

// Reduce maps p to its canonical representative modulo the ideal.
func (q *Quotient) Reduce(p mpoly.Poly) mpoly.Poly {
	if q.Mod.IsZero() {
		return p.Clone()
	}
	return NormalForm(q.Ring, p, q.Mod.Groebner())
}

// IsZeroElem reports whether p represents zero in the quotient.
func (q *Quotient) IsZeroElem(p mpoly.Poly) bool {
	return q.Reduce(p).IsZero()
}
