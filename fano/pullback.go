package fano

import (
	"fano-scheme/ideal"
	"fano-scheme/mpoly"
)

// pullback computes the ideal J2 cutting the auxiliary ring down to tuples
// of points spanning a plane inside X. The defining ideal of X is extended
// through the generic point map, then the plane coefficients are processed
// in index order: each working generator is replaced by its nonzero
// coefficients as a polynomial in the current coefficient variable. Over an
// infinite field a polynomial vanishes for every value of a variable only
// when each such coefficient vanishes, so the survivors state that the
// points lie on X for all choices of plane coefficients. The coefficient
// variables themselves join the generators, making the quotient S2 a ring
// in point coordinates only.
func (pl *plane) pullback(I *ideal.Ideal) *ideal.Ideal {
	S := pl.ring
	working := pl.F.ApplyIdeal(I).Gens
	for j := 1; j <= pl.k+1; j++ {
		v := []int{pl.planeVar(j)}
		var next []mpoly.Poly
		seen := make(map[string]bool)
		for _, g := range working {
			for _, c := range S.CoefficientsIn(g, v) {
				key := S.Format(c)
				if !seen[key] {
					seen[key] = true
					next = append(next, c)
				}
			}
		}
		working = next
	}
	gens := make([]mpoly.Poly, 0, len(working)+pl.k+1)
	gens = append(gens, working...)
	for j := 1; j <= pl.k+1; j++ {
		gens = append(gens, S.Var(pl.planeVar(j)))
	}
	return ideal.New(S, gens)
}
