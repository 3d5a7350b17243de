package mpoly

import (
	"fmt"
	"math/big"
)

// Add returns p + q.
func (r *Ring) Add(p, q Poly) Poly {
	terms := make([]Term, 0, len(p.Terms)+len(q.Terms))
	for _, t := range p.Terms {
		terms = append(terms, t.Clone())
	}
	for _, t := range q.Terms {
		terms = append(terms, t.Clone())
	}
	return r.normalize(terms)
}

// Sub returns p - q.
func (r *Ring) Sub(p, q Poly) Poly {
	terms := make([]Term, 0, len(p.Terms)+len(q.Terms))
	for _, t := range p.Terms {
		terms = append(terms, t.Clone())
	}
	for _, t := range q.Terms {
		c := new(big.Rat).Neg(t.Coeff)
		terms = append(terms, Term{Coeff: c, Mono: t.Mono.Clone()})
	}
	return r.normalize(terms)
}

// Neg returns -p.
func (r *Ring) Neg(p Poly) Poly {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = Term{Coeff: new(big.Rat).Neg(t.Coeff), Mono: t.Mono.Clone()}
	}
	return Poly{Terms: terms}
}

// Mul returns p * q.
func (r *Ring) Mul(p, q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	terms := make([]Term, 0, len(p.Terms)*len(q.Terms))
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			terms = append(terms, Term{
				Coeff: new(big.Rat).Mul(a.Coeff, b.Coeff),
				Mono:  a.Mono.Mul(b.Mono),
			})
		}
	}
	return r.normalize(terms)
}

// MulTerm returns t * p for a single term t.
func (r *Ring) MulTerm(t Term, p Poly) Poly {
	if t.Coeff.Sign() == 0 || p.IsZero() {
		return Poly{}
	}
	terms := make([]Term, len(p.Terms))
	for i, u := range p.Terms {
		terms[i] = Term{
			Coeff: new(big.Rat).Mul(t.Coeff, u.Coeff),
			Mono:  t.Mono.Mul(u.Mono),
		}
	}
	// multiplying by a monomial preserves the order of terms
	return Poly{Terms: terms}
}

// MulRat returns c * p.
func (r *Ring) MulRat(c *big.Rat, p Poly) Poly {
	if c == nil || c.Sign() == 0 || p.IsZero() {
		return Poly{}
	}
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = Term{Coeff: new(big.Rat).Mul(c, t.Coeff), Mono: t.Mono.Clone()}
	}
	return Poly{Terms: terms}
}

// Pow returns p^n for n >= 0 by binary exponentiation.
func (r *Ring) Pow(p Poly, n int) Poly {
	if n < 0 {
		panic(fmt.Sprintf("mpoly: negative exponent %d", n))
	}
	result := r.One()
	base := p.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = r.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = r.Mul(base, base)
		}
	}
	return result
}

// Monic divides p by its leading coefficient. The zero polynomial stays zero.
func (r *Ring) Monic(p Poly) Poly {
	if p.IsZero() {
		return Poly{}
	}
	lc := p.Terms[0].Coeff
	if lc.Cmp(big.NewRat(1, 1)) == 0 {
		return p.Clone()
	}
	inv := new(big.Rat).Inv(lc)
	return r.MulRat(inv, p)
}

// Normalize clears denominators and the integer content, then makes the
// leading coefficient positive. The result generates the same ideal and is
// the canonical representative used in printed bases.
func (r *Ring) Normalize(p Poly) Poly {
	if p.IsZero() {
		return Poly{}
	}
	lcm := big.NewInt(1)
	for _, t := range p.Terms {
		d := t.Coeff.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Div(lcm, g)
		lcm.Mul(lcm, d)
	}
	scaled := r.MulRat(new(big.Rat).SetInt(lcm), p)
	content := new(big.Int)
	for _, t := range scaled.Terms {
		content.GCD(nil, nil, content, t.Coeff.Num())
	}
	if content.Sign() != 0 && content.Cmp(big.NewInt(1)) != 0 {
		scaled = r.MulRat(new(big.Rat).SetFrac(big.NewInt(1), content), scaled)
	}
	if scaled.Terms[0].Coeff.Sign() < 0 {
		scaled = r.Neg(scaled)
	}
	return scaled
}
