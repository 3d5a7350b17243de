package scheme

import (
	"fmt"
	"math/big"

	"fano-scheme/ideal"
)

// Variety is a closed subvariety of an ambient space, cut out by an ideal in
// the ambient coordinate ring.
type Variety struct {
	Ambient Space
	Ideal   *ideal.Ideal
}

// New returns the subvariety of ambient cut out by I. The ideal must live in
// the ambient coordinate ring, and in a projective ambient its generators
// must be homogeneous.
func New(ambient Space, I *ideal.Ideal) (*Variety, error) {
	ring := ambient.CoordinateRing()
	if I.Ring != ring && !I.Ring.SameVars(ring) {
		return nil, fmt.Errorf("scheme: ideal in %v does not match ambient coordinates %v", I.Ring, ring)
	}
	if ambient.IsProjective() && !I.Homogeneous() {
		return nil, fmt.Errorf("scheme: inhomogeneous ideal in projective ambient %v", ambient)
	}
	return &Variety{Ambient: ambient, Ideal: I}, nil
}

// Dim returns the projective dimension of the variety, one less than the
// Krull dimension of its homogeneous coordinate ring. The empty variety has
// dimension -1. It panics on an affine ambient.
func (V *Variety) Dim() int {
	d, _ := V.hilbert()
	return d
}

// Degree returns the projective degree of the variety, read off the Hilbert
// series numerator. The empty variety has degree zero. It panics on an
// affine ambient.
func (V *Variety) Degree() *big.Int {
	_, deg := V.hilbert()
	return deg
}

func (V *Variety) hilbert() (int, *big.Int) {
	if !V.Ambient.IsProjective() {
		panic("scheme: Hilbert invariants need a projective ambient")
	}
	krull, deg := V.Ideal.DimDegree()
	dim := krull - 1
	if dim < -1 {
		dim = -1
	}
	if dim < 0 {
		return dim, big.NewInt(0)
	}
	return dim, deg
}

// Components splits the variety into closed pieces sharing the ambient, one
// per component ideal found by the splitting strategy of ideal.Components.
func (V *Variety) Components() []*Variety {
	pieces := V.Ideal.Components()
	out := make([]*Variety, len(pieces))
	for i, p := range pieces {
		out[i] = &Variety{Ambient: V.Ambient, Ideal: p}
	}
	return out
}

func (V *Variety) String() string {
	return fmt.Sprintf("V%s in %v", V.Ideal.Format(), V.Ambient)
}
