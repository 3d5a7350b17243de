package ideal

import (
	"math/big"
	"sort"

	"fano-scheme/internal/ratmat"
	"fano-scheme/mpoly"
)

// Components splits the variety of I into closed pieces by branching on
// generators that factor: generators with a common monomial factor and
// quadratic forms of rank at most two. Branches are explored to a fixpoint,
// then pieces whose variety lies inside another piece's variety are pruned,
// radical membership deciding the containment. The surviving ideals cover
// V(I) and come back in a deterministic order.
//
// Generators that are irreducible, or that only factor over an extension
// field, are never split; a geometrically reducible variety glued along such
// a generator stays in one piece.
func (I *Ideal) Components() []*Ideal {
	work := []*Ideal{I}
	seen := make(map[string]bool)
	var leaves []*Ideal
	for len(work) > 0 {
		J := work[len(work)-1]
		work = work[:len(work)-1]
		d := J.Digest()
		if seen[d] {
			continue
		}
		seen[d] = true
		if J.IsUnit() {
			continue
		}
		gb := J.Groebner()
		factors := splitGenerator(J.Ring, gb)
		if factors == nil {
			leaves = append(leaves, fromGroebner(J.Ring, gb))
			continue
		}
		for _, f := range factors {
			work = append(work, J.Plus(f))
		}
	}
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].FormatGroebner() < leaves[j].FormatGroebner()
	})
	return pruneContained(leaves)
}

// RadicalContains reports whether f vanishes on all of V(I), that is whether
// some power of f lies in I. The test adjoins an inverse for f and checks
// that the extended ideal is the whole ring.
func (I *Ideal) RadicalContains(f mpoly.Poly) bool {
	if I.Contains(f) {
		return true
	}
	if f.IsZero() {
		return false
	}
	r := I.Ring
	tn := freshName("t", r)
	ext, err := mpoly.NewRing(r.Field(), append(r.Vars(), tn), mpoly.GrevLex{})
	if err != nil {
		panic("ideal: radical test ring: " + err.Error())
	}
	gens := make([]mpoly.Poly, 0, len(I.Gens)+1)
	for _, g := range I.Gens {
		gens = append(gens, transfer(r, ext, 0, g))
	}
	inv := ext.Sub(ext.One(), ext.Mul(ext.Var(ext.NumVars()-1), transfer(r, ext, 0, f)))
	gens = append(gens, inv)
	return New(ext, gens).IsUnit()
}

// pruneContained drops every piece whose variety lies inside another piece's
// variety; of two pieces with the same variety the earlier one stays.
func pruneContained(leaves []*Ideal) []*Ideal {
	n := len(leaves)
	if n <= 1 {
		return leaves
	}
	inside := make([][]bool, n)
	for i := range inside {
		inside[i] = make([]bool, n)
		for j := range inside[i] {
			if i != j {
				inside[i][j] = varietyInside(leaves[i], leaves[j])
			}
		}
	}
	var out []*Ideal
	for i := range leaves {
		redundant := false
		for j := range leaves {
			if i == j || !inside[i][j] {
				continue
			}
			if !inside[j][i] || j < i {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, leaves[i])
		}
	}
	return out
}

// varietyInside reports V(A) ⊆ V(B): every generator of B vanishes on V(A).
func varietyInside(A, B *Ideal) bool {
	for _, b := range B.Gens {
		if !A.RadicalContains(b) {
			return false
		}
	}
	return true
}

// splitGenerator looks through a reduced basis for a generator with a usable
// factorization. All returned factors are outside the ideal, so every branch
// grows strictly and their union still covers the variety.
func splitGenerator(r *mpoly.Ring, gb []mpoly.Poly) []mpoly.Poly {
	for _, g := range gb {
		var factors []mpoly.Poly
		if fs := monomialContentSplit(r, g); fs != nil {
			factors = fs
		} else if g.TotalDeg() == 2 && r.Homogeneous(g) {
			factors = quadSplit(r, g)
		}
		if factors == nil {
			continue
		}
		usable := true
		trivial := true
		for _, f := range factors {
			nf := NormalForm(r, f, gb)
			if nf.IsZero() {
				usable = false
				break
			}
			trivial = false
		}
		if usable && !trivial {
			return factors
		}
	}
	return nil
}

// monomialContentSplit factors out the monomial gcd of the terms of g: each
// variable of the gcd becomes a linear branch, the cofactor the last branch.
func monomialContentSplit(r *mpoly.Ring, g mpoly.Poly) []mpoly.Poly {
	if g.IsZero() {
		return nil
	}
	content := g.Terms[0].Mono.Clone()
	for _, t := range g.Terms[1:] {
		content = content.GCD(t.Mono)
	}
	support := content.Support()
	if len(support) == 0 {
		return nil
	}
	var factors []mpoly.Poly
	for _, v := range support {
		factors = append(factors, r.Var(v))
	}
	cofTerms := make([]mpoly.Term, len(g.Terms))
	for i, t := range g.Terms {
		cofTerms[i] = mpoly.Term{Coeff: new(big.Rat).Set(t.Coeff), Mono: t.Mono.Div(content)}
	}
	cof := r.Resort(mpoly.Poly{Terms: cofTerms})
	if !cof.IsConstant() {
		factors = append(factors, cof)
	}
	if len(factors) < 2 && cof.IsConstant() && len(support) == 1 && content.TotalDeg() > 1 {
		// g is a pure power of one variable; the variable is the single root.
		return factors
	}
	if len(factors) < 2 {
		return nil
	}
	return factors
}

// quadSplit factors a quadratic form into monic linear forms over the
// rationals when its Gram matrix splits. Rank one gives the double root,
// rank two the two factors.
func quadSplit(r *mpoly.Ring, g mpoly.Poly) []mpoly.Poly {
	u, v, ok := gram(r, g).SplitRank2()
	if !ok {
		return nil
	}
	l1 := r.Monic(linearForm(r, u))
	l2 := r.Monic(linearForm(r, v))
	if r.Equal(l1, l2) {
		return []mpoly.Poly{l1}
	}
	return []mpoly.Poly{l1, l2}
}

// linearForm builds the polynomial u.x from a coefficient vector.
func linearForm(r *mpoly.Ring, u []*big.Rat) mpoly.Poly {
	l := r.Zero()
	for j, c := range u {
		if c.Sign() != 0 {
			l = r.Add(l, r.MulRat(c, r.Var(j)))
		}
	}
	return l
}

// gram builds the symmetric Gram matrix of a quadratic form.
func gram(r *mpoly.Ring, g mpoly.Poly) *ratmat.Matrix {
	n := r.NumVars()
	m := ratmat.New(n, n)
	half := big.NewRat(1, 2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			mono := make(mpoly.Mono, n)
			mono[i]++
			mono[j]++
			c := r.Coefficient(g, mono)
			if i == j {
				m.Set(i, i, c)
				continue
			}
			c.Mul(c, half)
			m.Set(i, j, c)
			m.Set(j, i, c)
		}
	}
	return m
}
