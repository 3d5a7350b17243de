package tests

import (
	"math/big"
	"testing"

	"fano-scheme/fano"
)

// The smooth quadric surface carries two rulings; its lines form two disjoint
// conics in G(1,3), one per ruling.
func TestLinesOnQuadricSurface(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping quadric surface line computation in short mode")
	}
	X := projectiveVariety(t, []string{"x0", "x1", "x2", "x3"}, []string{"x0*x3 - x1*x2"})
	F, err := fano.Scheme(1, X)
	if err != nil {
		t.Fatal(err)
	}
	if F.Dim() != 1 {
		t.Fatalf("dimension: got %d, want 1", F.Dim())
	}

	comps := F.Components()
	if len(comps) != 2 {
		for i, C := range comps {
			t.Logf("component %d: %s", i, C.Ideal.FormatGroebner())
		}
		t.Fatalf("components: got %d, want 2", len(comps))
	}
	wantGB := []string{
		"(p3^2 - p0*p5, p1, p2 + p3, p4)",
		"(p3^2 - p1*p4, p0, p2 - p3, p5)",
	}
	for i, C := range comps {
		if got := C.Ideal.FormatGroebner(); got != wantGB[i] {
			t.Errorf("component %d ideal: got %s, want %s", i, got, wantGB[i])
		}
		if C.Dim() != 1 {
			t.Errorf("component %d dimension: got %d, want 1", i, C.Dim())
		}
		if C.Degree().Cmp(big.NewInt(2)) != 0 {
			t.Errorf("component %d degree: got %v, want 2", i, C.Degree())
		}
		if C.Ambient != F.Ambient {
			t.Errorf("component %d does not share the ambient", i)
		}
	}
}
