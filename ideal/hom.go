package ideal

import (
	"fmt"

	"fano-scheme/mpoly"
)

// Hom is a ring homomorphism from a polynomial ring into a quotient,
// determined by the image of each source variable. Images are stored reduced
// modulo the target's ideal.
type Hom struct {
	Src    *mpoly.Ring
	Dst    *Quotient
	Images []mpoly.Poly
}

// NewHom builds the homomorphism sending source variable i to images[i].
func NewHom(src *mpoly.Ring, dst *Quotient, images []mpoly.Poly) (*Hom, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("ideal: hom needs source and target")
	}
	if len(images) != src.NumVars() {
		return nil, fmt.Errorf("ideal: %d images for %d source variables", len(images), src.NumVars())
	}
	reduced := make([]mpoly.Poly, len(images))
	for i, im := range images {
		reduced[i] = dst.Reduce(im)
	}
	return &Hom{Src: src, Dst: dst, Images: reduced}, nil
}

// Apply maps p through the homomorphism and reduces the result.
func (h *Hom) Apply(p mpoly.Poly) mpoly.Poly {
	dst := h.Dst.Ring
	powers := make([]map[int]mpoly.Poly, len(h.Images))
	pow := func(i, e int) mpoly.Poly {
		if powers[i] == nil {
			powers[i] = map[int]mpoly.Poly{1: h.Images[i]}
		}
		if p, ok := powers[i][e]; ok {
			return p
		}
		p := dst.Pow(h.Images[i], e)
		powers[i][e] = p
		return p
	}
	acc := dst.Zero()
	for _, t := range p.Terms {
		part := dst.Constant(t.Coeff)
		for i, e := range t.Mono {
			if e > 0 {
				part = dst.Mul(part, pow(i, e))
			}
		}
		acc = dst.Add(acc, part)
	}
	return h.Dst.Reduce(acc)
}

// ApplyIdeal pushes an ideal of the source ring forward to the ideal its
// generator images generate.
func (h *Hom) ApplyIdeal(I *Ideal) *Ideal {
	if I.Ring != h.Src {
		panic("ideal: pushforward of an ideal from a different ring")
	}
	gens := make([]mpoly.Poly, 0, len(I.Gens))
	for _, g := range I.Gens {
		gens = append(gens, h.Apply(g))
	}
	return New(h.Dst.Ring, gens)
}

// Kernel computes the kernel of the homomorphism as an ideal of the source
// ring. The graph ideal lives in a ring with the target variables in front of
// the source variables; eliminating the target block leaves exactly the
// source polynomials that map to zero.
func (h *Hom) Kernel() (*Ideal, error) {
	dst, src := h.Dst.Ring, h.Src
	nd := dst.NumVars()
	names := append(dst.Vars(), src.Vars()...)
	graph, err := mpoly.NewRing(dst.Field(), names, mpoly.Elim{Front: nd})
	if err != nil {
		return nil, fmt.Errorf("ideal: kernel graph ring: %w", err)
	}
	mod := h.Dst.Mod.Groebner()
	gens := make([]mpoly.Poly, 0, len(mod)+src.NumVars())
	for _, g := range mod {
		gens = append(gens, transfer(dst, graph, 0, g))
	}
	for i := 0; i < src.NumVars(); i++ {
		diff := graph.Sub(graph.Var(nd+i), transfer(dst, graph, 0, h.Images[i]))
		gens = append(gens, diff)
	}
	kept := eliminateBlock(graph, gens, nd)
	out := make([]mpoly.Poly, len(kept))
	for i, g := range kept {
		out[i] = lower(graph, src, nd, g)
	}
	if _, grev := src.Order().(mpoly.GrevLex); grev {
		// The elimination order restricts to grevlex on the tail block, so
		// the survivors are already the reduced basis in the source ring.
		return fromGroebner(src, out), nil
	}
	return New(src, out), nil
}

// transfer embeds a polynomial of from into to, with from's variable i
// becoming to's variable offset+i.
func transfer(from, to *mpoly.Ring, offset int, p mpoly.Poly) mpoly.Poly {
	terms := make([]mpoly.Term, len(p.Terms))
	for i, t := range p.Terms {
		m := make(mpoly.Mono, to.NumVars())
		for j, e := range t.Mono {
			m[offset+j] = e
		}
		terms[i] = mpoly.Term{Coeff: t.Coeff, Mono: m}
	}
	return to.Resort(mpoly.Poly{Terms: terms})
}

// lower projects a polynomial free of the first front variables of from down
// to the ring on the remaining variables.
func lower(from, to *mpoly.Ring, front int, p mpoly.Poly) mpoly.Poly {
	terms := make([]mpoly.Term, len(p.Terms))
	for i, t := range p.Terms {
		m := make(mpoly.Mono, to.NumVars())
		copy(m, t.Mono[front:])
		terms[i] = mpoly.Term{Coeff: t.Coeff, Mono: m}
	}
	return to.Resort(mpoly.Poly{Terms: terms})
}

// eliminateBlock computes the Groebner basis of gens in the elimination ring
// and keeps the elements free of the first front variables.
func eliminateBlock(graph *mpoly.Ring, gens []mpoly.Poly, front int) []mpoly.Poly {
	gb := New(graph, gens).Groebner()
	var kept []mpoly.Poly
	for _, g := range gb {
		usesFront := false
		for i := 0; i < front && !usesFront; i++ {
			usesFront = g.UsesVar(i)
		}
		if !usesFront {
			kept = append(kept, g)
		}
	}
	return kept
}

// fromGroebner wraps a known reduced Groebner basis as an ideal without
// recomputing it.
func fromGroebner(r *mpoly.Ring, gb []mpoly.Poly) *Ideal {
	I := New(r, gb)
	I.gb = I.Gens
	return I
}
