package ideal

import (
	"math/big"
	"sort"

	"fano-scheme/mpoly"
)

// NormalForm returns the remainder of p under multivariate division by the
// basis: no monomial of the result is divisible by the leading monomial of
// any basis element. When the basis is a Groebner basis the remainder is
// unique and vanishes exactly for ideal members.
func NormalForm(r *mpoly.Ring, p mpoly.Poly, basis []mpoly.Poly) mpoly.Poly {
	work := p.Clone()
	var remTerms []mpoly.Term
	for !work.IsZero() {
		lt := r.LeadingTerm(work)
		reducer := -1
		for i, b := range basis {
			if !b.IsZero() && r.LeadingMono(b).Divides(lt.Mono) {
				reducer = i
				break
			}
		}
		if reducer < 0 {
			remTerms = append(remTerms, lt.Clone())
			work = r.Sub(work, mpoly.Poly{Terms: []mpoly.Term{lt}})
			continue
		}
		b := basis[reducer]
		factor := mpoly.Term{
			Coeff: new(big.Rat).Quo(lt.Coeff, r.LeadingCoeff(b)),
			Mono:  lt.Mono.Div(r.LeadingMono(b)),
		}
		work = r.Sub(work, r.MulTerm(factor, b))
	}
	// remTerms were peeled off largest first, so they are already sorted.
	return mpoly.Poly{Terms: remTerms}
}

// interReduce turns a Groebner basis into the reduced Groebner basis: monic
// elements, pairwise indivisible leading monomials, every tail fully reduced,
// sorted by descending leading monomial.
func interReduce(r *mpoly.Ring, basis []mpoly.Poly) []mpoly.Poly {
	var work []mpoly.Poly
	for _, b := range basis {
		if !b.IsZero() {
			work = append(work, r.Monic(b))
		}
	}
	// Minimality: drop elements whose leading monomial another one divides.
	minimal := work[:0]
	for i, g := range work {
		redundant := false
		for j, h := range work {
			if i == j {
				continue
			}
			lm, lh := r.LeadingMono(g), r.LeadingMono(h)
			if lh.Divides(lm) && (!lm.Equal(lh) || j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			minimal = append(minimal, g)
		}
	}
	// Tail reduction to a fixpoint.
	for changed := true; changed; {
		changed = false
		for i := range minimal {
			others := make([]mpoly.Poly, 0, len(minimal)-1)
			others = append(others, minimal[:i]...)
			others = append(others, minimal[i+1:]...)
			h := r.Monic(NormalForm(r, minimal[i], others))
			if !r.Equal(h, minimal[i]) {
				minimal[i] = h
				changed = true
			}
		}
	}
	kept := minimal[:0]
	for _, g := range minimal {
		if !g.IsZero() {
			kept = append(kept, g)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return r.Order().Compare(r.LeadingMono(kept[i]), r.LeadingMono(kept[j])) > 0
	})
	return kept
}
