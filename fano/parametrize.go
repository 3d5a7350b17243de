package fano

import (
	"fmt"

	"fano-scheme/ideal"
	"fano-scheme/mpoly"
)

// plane is the generic k-plane attached to a coordinate ring R with n
// variables: an auxiliary ring S holding the plane coefficients s1..s{k+1}
// and a (k+1) x n grid of point coordinates p{j}_{i}, plus the homomorphism
// F : R -> S sending coordinate i to sum_j sj * p{j}_{i}, the generic point
// of the span of the k+1 points. The variable layout is fixed: plane
// coefficient j at index j-1, point coordinate (j,i) at (k+1)+(j-1)*n+(i-1).
// pullback and embed both read this layout, which keeps the minor ordering
// aligned with the ambient coordinates.
type plane struct {
	k, n int
	ring *mpoly.Ring
	F    *ideal.Hom
}

// parametrize builds the generic k-plane over R. The construction is purely
// combinatorial and total for validated inputs.
func parametrize(R *mpoly.Ring, k int) *plane {
	n := R.NumVars()
	names := make([]string, 0, (k+1)*(n+1))
	for j := 1; j <= k+1; j++ {
		names = append(names, fmt.Sprintf("s%d", j))
	}
	for j := 1; j <= k+1; j++ {
		for i := 1; i <= n; i++ {
			names = append(names, fmt.Sprintf("p%d_%d", j, i))
		}
	}
	S, err := mpoly.NewRing(R.Field(), names, mpoly.GrevLex{})
	if err != nil {
		panic("fano: auxiliary ring: " + err.Error())
	}
	pl := &plane{k: k, n: n, ring: S}
	forms := make([]mpoly.Poly, n)
	for i := 1; i <= n; i++ {
		f := S.Zero()
		for j := 1; j <= k+1; j++ {
			f = S.Add(f, S.Mul(S.Var(pl.planeVar(j)), S.Var(pl.pointVar(j, i))))
		}
		forms[i-1] = f
	}
	F, err := ideal.NewHom(R, ideal.NewQuotient(S, nil), forms)
	if err != nil {
		panic("fano: generic point map: " + err.Error())
	}
	pl.F = F
	return pl
}

// planeVar returns the index of plane coefficient sj, j in 1..k+1.
func (pl *plane) planeVar(j int) int { return j - 1 }

// pointVar returns the index of point coordinate p{j}_{i}, j in 1..k+1,
// i in 1..n.
func (pl *plane) pointVar(j, i int) int { return (pl.k + 1) + (j-1)*pl.n + (i - 1) }
