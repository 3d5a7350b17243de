package tests

import (
	"math/big"
	"testing"

	"fano-scheme/fano"
	"fano-scheme/mpoly"
	"fano-scheme/scheme"
)

func TestPlueckerQuadricG13(t *testing.T) {
	P3, err := scheme.NewProjectiveSpace(mpoly.QQ, 3)
	if err != nil {
		t.Fatal(err)
	}
	G, err := fano.GrassmannianOf(1, P3)
	if err != nil {
		t.Fatal(err)
	}
	if G.Ambient.Dimension() != 5 {
		t.Fatalf("ambient dimension: got %d, want 5", G.Ambient.Dimension())
	}
	if got := G.Ideal.FormatGroebner(); got != "(p2*p3 - p1*p4 + p0*p5)" {
		t.Fatalf("Pluecker ideal: got %s", got)
	}
	if G.Dim() != 4 {
		t.Fatalf("dimension: got %d, want 4", G.Dim())
	}
	if G.Degree().Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("degree: got %v, want 2", G.Degree())
	}
}

func TestGrassmannianAmbientIdentity(t *testing.T) {
	gr, err := scheme.NewProjectiveSpace(mpoly.QQ, 5)
	if err != nil {
		t.Fatal(err)
	}
	G, err := fano.Grassmannian(1, 3, gr)
	if err != nil {
		t.Fatal(err)
	}
	if G.Ambient != gr {
		t.Fatal("result ambient is not the supplied space")
	}
}

func TestGrassmannianDigestStability(t *testing.T) {
	run := func() string {
		P3, err := scheme.NewProjectiveSpace(mpoly.QQ, 3)
		if err != nil {
			t.Fatal(err)
		}
		G, err := fano.GrassmannianOf(1, P3)
		if err != nil {
			t.Fatal(err)
		}
		return G.Ideal.Digest()
	}
	first := run()
	if second := run(); second != first {
		t.Fatalf("digest changed across runs: %s vs %s", first, second)
	}
}

func TestLinesFillThePlane(t *testing.T) {
	P2, err := scheme.NewProjectiveSpace(mpoly.QQ, 2)
	if err != nil {
		t.Fatal(err)
	}
	G, err := fano.GrassmannianOf(1, P2)
	if err != nil {
		t.Fatal(err)
	}
	if !G.Ideal.IsZero() {
		t.Fatalf("G(1,2) ideal: got %s, want (0)", G.Ideal.FormatGroebner())
	}
	if G.Dim() != 2 {
		t.Fatalf("dimension: got %d, want 2", G.Dim())
	}
	if G.Degree().Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("degree: got %v, want 1", G.Degree())
	}
}

func TestPlanesInSpaceAreDualSpace(t *testing.T) {
	P3, err := scheme.NewProjectiveSpace(mpoly.QQ, 3)
	if err != nil {
		t.Fatal(err)
	}
	G, err := fano.GrassmannianOf(2, P3)
	if err != nil {
		t.Fatal(err)
	}
	if G.Ambient.Dimension() != 3 {
		t.Fatalf("ambient dimension: got %d, want 3", G.Ambient.Dimension())
	}
	if !G.Ideal.IsZero() {
		t.Fatalf("G(2,3) ideal: got %s, want (0)", G.Ideal.FormatGroebner())
	}
}
