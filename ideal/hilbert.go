package ideal

import (
	"math/big"

	"fano-scheme/mpoly"
)

// DimDegree returns the Krull dimension and the degree of R/I for a
// homogeneous ideal, read off the Hilbert series of the leading-term ideal.
// The zero ring, when I is the whole ring, reports dimension -1 and degree 0.
func (I *Ideal) DimDegree() (int, *big.Int) {
	n := I.Ring.NumVars()
	gb := I.Groebner()
	if len(gb) == 0 {
		return n, big.NewInt(1)
	}
	// The unit ideal reduces to {1}, which is homogeneous however the
	// ideal was presented.
	if I.IsUnit() {
		return -1, big.NewInt(0)
	}
	if !I.Homogeneous() {
		panic("ideal: Hilbert data needs homogeneous generators")
	}
	monos := make([]mpoly.Mono, len(gb))
	for i, g := range gb {
		monos[i] = I.Ring.LeadingMono(g)
	}
	q := HilbertNumerator(monos)
	drops := 0
	for len(q) > 0 && evalAtOne(q).Sign() == 0 {
		q = divOneMinusT(q)
		drops++
	}
	return n - drops, evalAtOne(q)
}

// Dim returns just the Krull dimension of R/I.
func (I *Ideal) Dim() int {
	d, _ := I.DimDegree()
	return d
}

// HilbertNumerator computes the numerator Q(t) of the Hilbert series
// Q(t)/(1-t)^n of R modulo the monomial ideal the given monomials generate.
// Coefficients are returned by ascending degree. The recursion splits on a
// shared variable; disjoint generators multiply out directly.
func HilbertNumerator(monos []mpoly.Mono) []*big.Int {
	monos = minimalMonos(monos)
	for _, m := range monos {
		if m.IsOne() {
			return []*big.Int{big.NewInt(0)}
		}
	}
	if v := sharedVar(monos); v >= 0 {
		// Q(M) = Q(M + (x)) + t * Q(M : x) for the pivot variable x.
		var plus, colon []mpoly.Mono
		pivot := make(mpoly.Mono, len(monos[0]))
		pivot[v] = 1
		plus = append(plus, pivot)
		for _, m := range monos {
			if m.DegIn(v) == 0 {
				plus = append(plus, m)
				colon = append(colon, m)
				continue
			}
			c := m.Clone()
			c[v]--
			colon = append(colon, c)
		}
		return addShifted(HilbertNumerator(plus), HilbertNumerator(colon))
	}
	// Pairwise coprime generators: Q = prod(1 - t^deg).
	q := []*big.Int{big.NewInt(1)}
	for _, m := range monos {
		q = mulOneMinusTPow(q, m.TotalDeg())
	}
	return q
}

// minimalMonos removes duplicates and any monomial another one divides.
func minimalMonos(monos []mpoly.Mono) []mpoly.Mono {
	var out []mpoly.Mono
	for i, m := range monos {
		keep := true
		for j, d := range monos {
			if i == j {
				continue
			}
			if d.Divides(m) && (!m.Equal(d) || j < i) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	return out
}

// sharedVar returns a variable occurring in at least two monomials, taking
// the most frequent one, or -1 when the monomials are pairwise coprime.
func sharedVar(monos []mpoly.Mono) int {
	if len(monos) < 2 {
		return -1
	}
	counts := make([]int, len(monos[0]))
	for _, m := range monos {
		for i, e := range m {
			if e > 0 {
				counts[i]++
			}
		}
	}
	best, bestCount := -1, 1
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}
	return best
}

// addShifted returns a(t) + t*b(t).
func addShifted(a, b []*big.Int) []*big.Int {
	n := len(a)
	if len(b)+1 > n {
		n = len(b) + 1
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i >= 1 && i-1 < len(b) {
			out[i].Add(out[i], b[i-1])
		}
	}
	return trimInt(out)
}

// mulOneMinusTPow returns q(t) * (1 - t^d).
func mulOneMinusTPow(q []*big.Int, d int) []*big.Int {
	out := make([]*big.Int, len(q)+d)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(q) {
			out[i].Add(out[i], q[i])
		}
		if i >= d {
			out[i].Sub(out[i], q[i-d])
		}
	}
	return trimInt(out)
}

// divOneMinusT divides q(t) by (1 - t); q(1) must vanish.
func divOneMinusT(q []*big.Int) []*big.Int {
	if len(q) <= 1 {
		return nil
	}
	out := make([]*big.Int, len(q)-1)
	run := new(big.Int)
	for i := 0; i < len(q)-1; i++ {
		run.Add(run, q[i])
		out[i] = new(big.Int).Set(run)
	}
	return trimInt(out)
}

func evalAtOne(q []*big.Int) *big.Int {
	sum := new(big.Int)
	for _, c := range q {
		sum.Add(sum, c)
	}
	return sum
}

func trimInt(q []*big.Int) []*big.Int {
	for len(q) > 0 && q[len(q)-1].Sign() == 0 {
		q = q[:len(q)-1]
	}
	return q
}
