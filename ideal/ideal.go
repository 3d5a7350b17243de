package ideal

import (
	"fmt"
	"strings"

	"fano-scheme/mpoly"
)

// Ideal is a finitely generated ideal of a polynomial ring. Gens never
// contains the zero polynomial. The reduced Groebner basis is computed on
// first use and cached; Ideal values must not be mutated after construction.
type Ideal struct {
	Ring *mpoly.Ring
	Gens []mpoly.Poly

	gb []mpoly.Poly
}

// New builds an ideal from generators, dropping zeros. The zero ideal has no
// generators.
func New(r *mpoly.Ring, gens []mpoly.Poly) *Ideal {
	if r == nil {
		panic("ideal: nil ring")
	}
	kept := make([]mpoly.Poly, 0, len(gens))
	for _, g := range gens {
		if !g.IsZero() {
			kept = append(kept, g.Clone())
		}
	}
	return &Ideal{Ring: r, Gens: kept}
}

// Zero returns the zero ideal of r.
func Zero(r *mpoly.Ring) *Ideal { return New(r, nil) }

// Parse builds an ideal from polynomial expressions in r's variables.
func Parse(r *mpoly.Ring, srcs []string) (*Ideal, error) {
	gens := make([]mpoly.Poly, 0, len(srcs))
	for _, src := range srcs {
		p, err := r.ParsePoly(src)
		if err != nil {
			return nil, fmt.Errorf("ideal: generator %q: %w", src, err)
		}
		gens = append(gens, p)
	}
	return New(r, gens), nil
}

// IsZero reports whether the ideal has no nonzero generators.
func (I *Ideal) IsZero() bool { return len(I.Gens) == 0 }

// Sum returns the ideal generated by the generators of I and J together.
// Both ideals must live in the same ring.
func (I *Ideal) Sum(J *Ideal) *Ideal {
	if I.Ring != J.Ring {
		panic("ideal: sum across rings")
	}
	gens := make([]mpoly.Poly, 0, len(I.Gens)+len(J.Gens))
	gens = append(gens, I.Gens...)
	gens = append(gens, J.Gens...)
	return New(I.Ring, gens)
}

// Plus returns the ideal I + <ps...>.
func (I *Ideal) Plus(ps ...mpoly.Poly) *Ideal {
	gens := make([]mpoly.Poly, 0, len(I.Gens)+len(ps))
	gens = append(gens, I.Gens...)
	gens = append(gens, ps...)
	return New(I.Ring, gens)
}

// Groebner returns the reduced Groebner basis of I under the ring's monomial
// order: monic generators, every tail monomial irreducible by the others. The
// reduced basis is unique, so it doubles as a canonical form for the ideal.
func (I *Ideal) Groebner() []mpoly.Poly {
	if I.gb == nil {
		I.gb = buchberger(I.Ring, I.Gens)
	}
	return I.gb
}

// Contains reports whether p lies in I.
func (I *Ideal) Contains(p mpoly.Poly) bool {
	return NormalForm(I.Ring, p, I.Groebner()).IsZero()
}

// ContainsIdeal reports whether J is a subset of I.
func (I *Ideal) ContainsIdeal(J *Ideal) bool {
	if I.Ring != J.Ring {
		panic("ideal: containment across rings")
	}
	for _, g := range J.Gens {
		if !I.Contains(g) {
			return false
		}
	}
	return true
}

// Equal reports whether I and J generate the same ideal. Equality is decided
// on the reduced Groebner bases.
func (I *Ideal) Equal(J *Ideal) bool {
	if I.Ring != J.Ring {
		return false
	}
	a, b := I.Groebner(), J.Groebner()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !I.Ring.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsUnit reports whether I is the whole ring, which for a Groebner basis
// means the basis is exactly {1}.
func (I *Ideal) IsUnit() bool {
	gb := I.Groebner()
	return len(gb) == 1 && gb[0].IsConstant() && !gb[0].IsZero()
}

// Homogeneous reports whether every generator is homogeneous.
func (I *Ideal) Homogeneous() bool {
	for _, g := range I.Gens {
		if !I.Ring.Homogeneous(g) {
			return false
		}
	}
	return true
}

// Format renders the generators as a comma-separated list in a fixed order.
func (I *Ideal) Format() string {
	if len(I.Gens) == 0 {
		return "(0)"
	}
	parts := make([]string, len(I.Gens))
	for i, g := range I.Gens {
		parts[i] = I.Ring.Format(g)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FormatGroebner renders the reduced Groebner basis the same way.
func (I *Ideal) FormatGroebner() string {
	gb := I.Groebner()
	if len(gb) == 0 {
		return "(0)"
	}
	parts := make([]string, len(gb))
	for i, g := range gb {
		parts[i] = I.Ring.Format(g)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (I *Ideal) String() string { return I.Format() }
