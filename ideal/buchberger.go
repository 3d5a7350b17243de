package ideal

import (
	"math/big"

	"fano-scheme/mpoly"
)

// buchberger completes a generating set to the reduced Groebner basis under
// the ring's monomial order. Pairs are handled smallest lcm first, with the
// coprimality and chain criteria pruning useless S-polynomials.
func buchberger(r *mpoly.Ring, gens []mpoly.Poly) []mpoly.Poly {
	var basis []mpoly.Poly
	for _, g := range gens {
		if !g.IsZero() {
			basis = append(basis, r.Monic(g))
		}
	}
	if len(basis) == 0 {
		return nil
	}

	type pair struct {
		i, j int
		lcm  mpoly.Mono
	}
	var pending []pair
	handled := make(map[[2]int]bool)
	key := func(i, j int) [2]int {
		if i > j {
			i, j = j, i
		}
		return [2]int{i, j}
	}
	push := func(j int) {
		lmJ := r.LeadingMono(basis[j])
		for i := 0; i < j; i++ {
			pending = append(pending, pair{i: i, j: j, lcm: r.LeadingMono(basis[i]).LCM(lmJ)})
		}
	}
	for j := range basis {
		push(j)
	}

	smaller := func(a, b pair) bool {
		da, db := a.lcm.TotalDeg(), b.lcm.TotalDeg()
		if da != db {
			return da < db
		}
		return r.Order().Compare(a.lcm, b.lcm) < 0
	}

	for len(pending) > 0 {
		best := 0
		for i := 1; i < len(pending); i++ {
			if smaller(pending[i], pending[best]) {
				best = i
			}
		}
		pr := pending[best]
		pending[best] = pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		handled[key(pr.i, pr.j)] = true

		lmI := r.LeadingMono(basis[pr.i])
		lmJ := r.LeadingMono(basis[pr.j])
		if lmI.Coprime(lmJ) {
			continue
		}
		if chainSkip(r, basis, handled, key, pr.i, pr.j, pr.lcm) {
			continue
		}
		h := NormalForm(r, sPoly(r, basis[pr.i], basis[pr.j]), basis)
		if h.IsZero() {
			continue
		}
		basis = append(basis, r.Monic(h))
		push(len(basis) - 1)
	}
	return interReduce(r, basis)
}

// chainSkip applies the chain criterion: the pair (i, j) is redundant when
// some other basis element divides its lcm and both side pairs were already
// handled.
func chainSkip(r *mpoly.Ring, basis []mpoly.Poly, handled map[[2]int]bool, key func(int, int) [2]int, i, j int, lcm mpoly.Mono) bool {
	for k := range basis {
		if k == i || k == j {
			continue
		}
		if !r.LeadingMono(basis[k]).Divides(lcm) {
			continue
		}
		if handled[key(i, k)] && handled[key(j, k)] {
			return true
		}
	}
	return false
}

// sPoly returns the S-polynomial of f and g, the combination cancelling both
// leading terms against their lcm.
func sPoly(r *mpoly.Ring, f, g mpoly.Poly) mpoly.Poly {
	lmF, lmG := r.LeadingMono(f), r.LeadingMono(g)
	l := lmF.LCM(lmG)
	tf := mpoly.Term{
		Coeff: new(big.Rat).Inv(r.LeadingCoeff(f)),
		Mono:  l.Div(lmF),
	}
	tg := mpoly.Term{
		Coeff: new(big.Rat).Inv(r.LeadingCoeff(g)),
		Mono:  l.Div(lmG),
	}
	return r.Sub(r.MulTerm(tf, f), r.MulTerm(tg, g))
}
