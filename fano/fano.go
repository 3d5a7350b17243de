package fano

// Package fano computes Fano schemes: for a projective variety X and a plane
// dimension k, the subscheme of the Grassmannian G(k,n) whose points are the
// k-planes lying on X, presented by its defining ideal in Pluecker
// coordinates. The computation is elimination-theoretic throughout: a generic
// k-plane is parametrized by k+1 spanning points, the equations of X are
// pulled back through the generic point of the span, the plane parameters
// are eliminated coefficient by coefficient, and the kernel of the maximal-
// minor map cuts the scheme out of the ambient projective space.
//
// The base field is the rationals. The coefficient-wise elimination step
// reads "vanishes for every value of a plane parameter" as "every
// coefficient vanishes", which is valid exactly because the field is
// infinite.

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"fano-scheme/scheme"
)

// Scheme computes the Fano scheme of k-planes contained in X, synthesizing
// the Grassmannian ambient: projective space of dimension C(n,k+1)-1 with
// coordinates p0..pN, where n counts the homogeneous coordinates of X's
// ambient.
func Scheme(k int, X *scheme.Variety) (*scheme.Variety, error) {
	if err := validateProjective(X); err != nil {
		return nil, err
	}
	n := X.Ideal.Ring.NumVars()
	if err := validatePlaneDimension(k, n); err != nil {
		return nil, err
	}
	names := make([]string, combin.Binomial(n, k+1))
	for t := range names {
		names[t] = fmt.Sprintf("p%d", t)
	}
	grassAmbient, err := scheme.NewProjectiveSpaceNamed(X.Ambient.BaseField(), names)
	if err != nil {
		return nil, fmt.Errorf("fano: grassmannian ambient: %w", err)
	}
	return SchemeIn(k, X, grassAmbient)
}

// SchemeIn computes the Fano scheme of k-planes contained in X as a
// subvariety of the supplied Grassmannian ambient, whose dimension N must
// satisfy N+1 = C(n,k+1). Validation runs before any ring is built; the
// result's ambient is exactly grassAmbient.
func SchemeIn(k int, X *scheme.Variety, grassAmbient scheme.Space) (*scheme.Variety, error) {
	if err := validateProjective(X); err != nil {
		return nil, err
	}
	n := X.Ideal.Ring.NumVars()
	if err := validatePlaneDimension(k, n); err != nil {
		return nil, err
	}
	if err := validateAmbientType(grassAmbient); err != nil {
		return nil, err
	}
	if err := validateAmbientDimension(n, k, grassAmbient); err != nil {
		return nil, err
	}
	pl := parametrize(X.Ideal.Ring, k)
	return pl.embed(pl.pullback(X.Ideal), grassAmbient)
}
