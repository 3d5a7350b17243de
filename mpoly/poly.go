package mpoly

import (
	"math/big"
	"sort"
)

// Term is one coefficient-monomial pair. The coefficient is never zero in a
// normalized polynomial.
type Term struct {
	Coeff *big.Rat
	Mono  Mono
}

// Clone returns an independent copy of the term.
func (t Term) Clone() Term {
	return Term{Coeff: new(big.Rat).Set(t.Coeff), Mono: t.Mono.Clone()}
}

// Poly is a polynomial as a list of terms. A normalized polynomial has its
// terms sorted strictly descending under the ring's monomial order with no
// zero coefficients; the zero polynomial has no terms. All Ring operations
// return normalized polynomials.
type Poly struct {
	Terms []Term
}

// IsZero reports whether the polynomial is zero.
func (p Poly) IsZero() bool { return len(p.Terms) == 0 }

// IsConstant reports whether the polynomial is a field element, zero
// included.
func (p Poly) IsConstant() bool {
	return len(p.Terms) == 0 || (len(p.Terms) == 1 && p.Terms[0].Mono.IsOne())
}

// IsMonomial reports whether the polynomial has exactly one term.
func (p Poly) IsMonomial() bool { return len(p.Terms) == 1 }

// NumTerms returns the number of terms.
func (p Poly) NumTerms() int { return len(p.Terms) }

// TotalDeg returns the total degree, or -1 for the zero polynomial.
func (p Poly) TotalDeg() int {
	d := -1
	for _, t := range p.Terms {
		if td := t.Mono.TotalDeg(); td > d {
			d = td
		}
	}
	return d
}

// DegIn returns the degree in variable i, or -1 for the zero polynomial.
func (p Poly) DegIn(i int) int {
	d := -1
	for _, t := range p.Terms {
		if e := t.Mono.DegIn(i); e > d {
			d = e
		}
	}
	return d
}

// UsesVar reports whether variable i occurs in any term.
func (p Poly) UsesVar(i int) bool {
	for _, t := range p.Terms {
		if t.Mono.DegIn(i) > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p Poly) Clone() Poly {
	if len(p.Terms) == 0 {
		return Poly{}
	}
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.Clone()
	}
	return Poly{Terms: terms}
}

// ConstantValue returns the coefficient of the constant term, zero when the
// polynomial has none.
func (p Poly) ConstantValue() *big.Rat {
	for _, t := range p.Terms {
		if t.Mono.IsOne() {
			return new(big.Rat).Set(t.Coeff)
		}
	}
	return new(big.Rat)
}

// LeadingTerm returns the largest term of p under the ring's order. It panics
// on the zero polynomial.
func (r *Ring) LeadingTerm(p Poly) Term {
	if p.IsZero() {
		panic("mpoly: leading term of zero polynomial")
	}
	return p.Terms[0]
}

// LeadingMono returns the leading monomial of p. It panics on the zero
// polynomial.
func (r *Ring) LeadingMono(p Poly) Mono {
	return r.LeadingTerm(p).Mono
}

// LeadingCoeff returns the leading coefficient of p. It panics on the zero
// polynomial.
func (r *Ring) LeadingCoeff(p Poly) *big.Rat {
	return r.LeadingTerm(p).Coeff
}

// Equal reports whether p and q are the same polynomial. Both arguments must
// be normalized, which every Ring operation guarantees.
func (r *Ring) Equal(p, q Poly) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Mono.Equal(q.Terms[i].Mono) {
			return false
		}
		if p.Terms[i].Coeff.Cmp(q.Terms[i].Coeff) != 0 {
			return false
		}
	}
	return true
}

// normalize sorts terms descending under the ring order, merges terms with
// equal monomials and drops zero coefficients. It owns its argument.
func (r *Ring) normalize(terms []Term) Poly {
	if len(terms) == 0 {
		return Poly{}
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return r.order.Compare(terms[i].Mono, terms[j].Mono) > 0
	})
	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && out[n-1].Mono.Equal(t.Mono) {
			out[n-1].Coeff.Add(out[n-1].Coeff, t.Coeff)
			continue
		}
		out = append(out, t)
	}
	kept := out[:0]
	for _, t := range out {
		if t.Coeff.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return Poly{}
	}
	return Poly{Terms: kept}
}

// Resort renormalizes a polynomial after a change of monomial order, for
// moving polynomials between rings that share variables but not orders.
func (r *Ring) Resort(p Poly) Poly {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.Clone()
	}
	return r.normalize(terms)
}
