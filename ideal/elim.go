package ideal

import (
	"fmt"

	"fano-scheme/mpoly"
)

// Eliminate computes the elimination ideal I ∩ k[tail], where tail is every
// ring variable after the first front ones. The result lives in a fresh
// grevlex ring on the tail variables.
func Eliminate(I *Ideal, front int) (*Ideal, error) {
	r := I.Ring
	n := r.NumVars()
	if front <= 0 || front >= n {
		return nil, fmt.Errorf("ideal: eliminate %d of %d variables", front, n)
	}
	elimRing, err := mpoly.NewRing(r.Field(), r.Vars(), mpoly.Elim{Front: front})
	if err != nil {
		return nil, fmt.Errorf("ideal: elimination ring: %w", err)
	}
	gens := make([]mpoly.Poly, 0, len(I.Gens))
	for _, g := range I.Gens {
		gens = append(gens, transfer(r, elimRing, 0, g))
	}
	kept := eliminateBlock(elimRing, gens, front)
	tail, err := mpoly.NewRing(r.Field(), r.Vars()[front:], mpoly.GrevLex{})
	if err != nil {
		return nil, fmt.Errorf("ideal: tail ring: %w", err)
	}
	out := make([]mpoly.Poly, len(kept))
	for i, g := range kept {
		out[i] = lower(elimRing, tail, front, g)
	}
	return fromGroebner(tail, out), nil
}

// Intersect computes I ∩ J with the usual auxiliary variable: eliminate t
// from t*I + (1-t)*J. Both ideals must live in the same ring.
func Intersect(I, J *Ideal) (*Ideal, error) {
	if I.Ring != J.Ring {
		return nil, fmt.Errorf("ideal: intersection across rings")
	}
	r := I.Ring
	tname := freshName("t", r)
	mixRing, err := mpoly.NewRing(r.Field(), append([]string{tname}, r.Vars()...), mpoly.Elim{Front: 1})
	if err != nil {
		return nil, fmt.Errorf("ideal: intersection ring: %w", err)
	}
	t := mixRing.Var(0)
	oneMinusT := mixRing.Sub(mixRing.One(), t)
	gens := make([]mpoly.Poly, 0, len(I.Gens)+len(J.Gens))
	for _, g := range I.Gens {
		gens = append(gens, mixRing.Mul(t, transfer(r, mixRing, 1, g)))
	}
	for _, h := range J.Gens {
		gens = append(gens, mixRing.Mul(oneMinusT, transfer(r, mixRing, 1, h)))
	}
	kept := eliminateBlock(mixRing, gens, 1)
	out := make([]mpoly.Poly, len(kept))
	for i, g := range kept {
		out[i] = lower(mixRing, r, 1, g)
	}
	if _, grev := r.Order().(mpoly.GrevLex); grev {
		return fromGroebner(r, out), nil
	}
	return New(r, out), nil
}

// freshName returns base, or base with a numeric suffix, whichever first
// avoids the ring's variable names.
func freshName(base string, r *mpoly.Ring) string {
	if _, taken := r.VarIndex(base); !taken {
		return base
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if _, taken := r.VarIndex(name); !taken {
			return name
		}
	}
}
