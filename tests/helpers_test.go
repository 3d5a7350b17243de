package tests

import (
	"testing"

	"fano-scheme/ideal"
	"fano-scheme/mpoly"
	"fano-scheme/scheme"
)

// projectiveVariety builds V(polys) in the projective space with the given
// coordinate names.
func projectiveVariety(t *testing.T, vars, polys []string) *scheme.Variety {
	t.Helper()
	P, err := scheme.NewProjectiveSpaceNamed(mpoly.QQ, vars)
	if err != nil {
		t.Fatalf("projective space: %v", err)
	}
	I, err := ideal.Parse(P.CoordinateRing(), polys)
	if err != nil {
		t.Fatalf("parse ideal: %v", err)
	}
	X, err := scheme.New(P, I)
	if err != nil {
		t.Fatalf("variety: %v", err)
	}
	return X
}
