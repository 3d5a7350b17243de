package mpoly

import (
	"fmt"
	"math/big"
	"sort"
)

// Coefficient returns the coefficient of the exact monomial m in p, zero when
// m does not occur.
func (r *Ring) Coefficient(p Poly, m Mono) *big.Rat {
	for _, t := range p.Terms {
		if t.Mono.Equal(m) {
			return new(big.Rat).Set(t.Coeff)
		}
	}
	return new(big.Rat)
}

// CoefficientsIn writes p as a sum over monomials in the selected variables
// and returns the coefficient polynomials, each free of the selected
// variables. The coefficients come out ordered by descending monomial in the
// selected variables, so the result is deterministic.
func (r *Ring) CoefficientsIn(p Poly, vars []int) []Poly {
	if p.IsZero() {
		return nil
	}
	selected := make([]bool, len(r.vars))
	for _, i := range vars {
		r.checkVar(i)
		selected[i] = true
	}
	type group struct {
		key   Mono
		terms []Term
	}
	byKey := make(map[string]*group)
	var keys []*group
	for _, t := range p.Terms {
		key := r.monoOne()
		rest := t.Mono.Clone()
		for i, sel := range selected {
			if sel {
				key[i] = t.Mono[i]
				rest[i] = 0
			}
		}
		ks := fmt.Sprint([]int(key))
		g, ok := byKey[ks]
		if !ok {
			g = &group{key: key}
			byKey[ks] = g
			keys = append(keys, g)
		}
		g.terms = append(g.terms, Term{Coeff: new(big.Rat).Set(t.Coeff), Mono: rest})
	}
	sort.Slice(keys, func(i, j int) bool {
		return r.order.Compare(keys[i].key, keys[j].key) > 0
	})
	out := make([]Poly, len(keys))
	for i, g := range keys {
		out[i] = r.normalize(g.terms)
	}
	return out
}

// Eval evaluates p at a rational point, one value per ring variable.
func (r *Ring) Eval(p Poly, point []*big.Rat) *big.Rat {
	if len(point) != len(r.vars) {
		panic(fmt.Sprintf("mpoly: point has %d coordinates for ring with %d variables", len(point), len(r.vars)))
	}
	sum := new(big.Rat)
	tmp := new(big.Rat)
	for _, t := range p.Terms {
		tmp.Set(t.Coeff)
		for i, e := range t.Mono {
			for ; e > 0; e-- {
				tmp.Mul(tmp, point[i])
			}
		}
		sum.Add(sum, tmp)
	}
	return sum
}

// HomogeneousIn reports whether every term of p has the same total degree in
// the selected variables. The zero polynomial is homogeneous.
func (r *Ring) HomogeneousIn(p Poly, vars []int) bool {
	if p.IsZero() {
		return true
	}
	selected := make([]bool, len(r.vars))
	for _, i := range vars {
		r.checkVar(i)
		selected[i] = true
	}
	deg := -1
	for _, t := range p.Terms {
		d := 0
		for i, e := range t.Mono {
			if selected[i] {
				d += e
			}
		}
		if deg < 0 {
			deg = d
		} else if d != deg {
			return false
		}
	}
	return true
}

// Homogeneous reports whether every term of p has the same total degree.
func (r *Ring) Homogeneous(p Poly) bool {
	if p.IsZero() {
		return true
	}
	deg := p.Terms[0].Mono.TotalDeg()
	for _, t := range p.Terms[1:] {
		if t.Mono.TotalDeg() != deg {
			return false
		}
	}
	return true
}
