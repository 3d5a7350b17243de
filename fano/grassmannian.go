package fano

import (
	"fmt"

	"fano-scheme/ideal"
	"fano-scheme/scheme"
)

// Grassmannian computes G(k,n), the k-planes in projective n-space, as a
// subvariety of the supplied ambient. A Grassmannian is the Fano scheme of
// the whole space, so this delegates into the same pipeline with a trivial
// defining ideal.
func Grassmannian(k, n int, grassAmbient scheme.Space) (*scheme.Variety, error) {
	P, err := scheme.NewProjectiveSpace(grassAmbient.BaseField(), n)
	if err != nil {
		return nil, fmt.Errorf("fano: grassmannian: %w", err)
	}
	return GrassmannianOfIn(k, P, grassAmbient)
}

// GrassmannianOf computes the Grassmannian of k-planes in P, synthesizing
// the ambient the way Scheme does.
func GrassmannianOf(k int, P scheme.Space) (*scheme.Variety, error) {
	X, err := wholeSpace(P)
	if err != nil {
		return nil, err
	}
	return Scheme(k, X)
}

// GrassmannianOfIn computes the Grassmannian of k-planes in P inside the
// supplied ambient.
func GrassmannianOfIn(k int, P, grassAmbient scheme.Space) (*scheme.Variety, error) {
	X, err := wholeSpace(P)
	if err != nil {
		return nil, err
	}
	return SchemeIn(k, X, grassAmbient)
}

// wholeSpace wraps P as the variety with trivial defining ideal.
func wholeSpace(P scheme.Space) (*scheme.Variety, error) {
	return scheme.New(P, ideal.Zero(P.CoordinateRing()))
}
