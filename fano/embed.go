package fano

import (
	"fmt"

	"fano-scheme/ideal"
	"fano-scheme/scheme"
)

// embed carries the reduced plane data into the Grassmannian ambient. The
// point matrix M2 over S2 = S/J2 holds the images of the point coordinates
// in the fixed grid layout; its (k+1)-minors, with column subsets in
// ascending lexicographic order, are the Pluecker coordinates of the span.
// The kernel of the map sending ambient coordinate t to minor t is the
// defining ideal of the Fano scheme.
func (pl *plane) embed(J2 *ideal.Ideal, grassAmbient scheme.Space) (*scheme.Variety, error) {
	S2 := ideal.NewQuotient(pl.ring, J2)
	M2 := ideal.NewPolyMatrix(pl.ring, pl.k+1, pl.n)
	for j := 1; j <= pl.k+1; j++ {
		for i := 1; i <= pl.n; i++ {
			M2.Set(j-1, i-1, S2.Reduce(pl.ring.Var(pl.pointVar(j, i))))
		}
	}
	minors := M2.Minors(pl.k + 1)
	gr, err := ideal.NewHom(grassAmbient.CoordinateRing(), S2, minors)
	if err != nil {
		return nil, fmt.Errorf("fano: pluecker map: %w", err)
	}
	kernel, err := gr.Kernel()
	if err != nil {
		return nil, fmt.Errorf("fano: elimination ideal: %w", err)
	}
	return scheme.New(grassAmbient, kernel)
}
