package scheme

// Package scheme provides the geometric value objects of the repository:
// projective and affine ambient spaces owning their coordinate rings, and
// varieties cut out by ideals in those rings. The fano package consumes
// spaces as inputs and produces varieties as results.

import (
	"fmt"

	"fano-scheme/mpoly"
)

// Space is an ambient space with a fixed coordinate ring.
type Space interface {
	// Dimension is the geometric dimension: r for P^r, n for A^n.
	Dimension() int
	// CoordinateRing returns the ring the space's subvarieties are cut out
	// in: r+1 homogeneous coordinates for P^r, n coordinates for A^n.
	CoordinateRing() *mpoly.Ring
	BaseField() *mpoly.Field
	IsProjective() bool
}

// ProjectiveSpace is P^r over a field.
type ProjectiveSpace struct {
	ring *mpoly.Ring
}

// NewProjectiveSpace returns P^dim with homogeneous coordinates x0..x{dim}
// under the graded reverse lexicographic order.
func NewProjectiveSpace(f *mpoly.Field, dim int) (*ProjectiveSpace, error) {
	if dim < 0 {
		return nil, fmt.Errorf("scheme: projective space of dimension %d", dim)
	}
	names := make([]string, dim+1)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	return NewProjectiveSpaceNamed(f, names)
}

// NewProjectiveSpaceNamed returns P^{len(names)-1} with the given coordinate
// names.
func NewProjectiveSpaceNamed(f *mpoly.Field, names []string) (*ProjectiveSpace, error) {
	r, err := mpoly.NewRing(f, names, mpoly.GrevLex{})
	if err != nil {
		return nil, fmt.Errorf("scheme: projective space: %w", err)
	}
	return &ProjectiveSpace{ring: r}, nil
}

// Dimension returns r for P^r.
func (P *ProjectiveSpace) Dimension() int { return P.ring.NumVars() - 1 }

// CoordinateRing returns the homogeneous coordinate ring.
func (P *ProjectiveSpace) CoordinateRing() *mpoly.Ring { return P.ring }

// BaseField returns the coefficient field.
func (P *ProjectiveSpace) BaseField() *mpoly.Field { return P.ring.Field() }

// IsProjective reports true.
func (P *ProjectiveSpace) IsProjective() bool { return true }

func (P *ProjectiveSpace) String() string {
	return fmt.Sprintf("P^%d over %s", P.Dimension(), P.BaseField())
}

// AffineSpace is A^n over a field. It cannot host the Fano construction,
// which rejects non-projective ambients up front, but rounds out the Space
// interface for callers that work with affine data.
type AffineSpace struct {
	ring *mpoly.Ring
}

// NewAffineSpace returns A^dim with coordinates x1..x{dim}.
func NewAffineSpace(f *mpoly.Field, dim int) (*AffineSpace, error) {
	if dim < 1 {
		return nil, fmt.Errorf("scheme: affine space of dimension %d", dim)
	}
	names := make([]string, dim)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	r, err := mpoly.NewRing(f, names, mpoly.GrevLex{})
	if err != nil {
		return nil, fmt.Errorf("scheme: affine space: %w", err)
	}
	return &AffineSpace{ring: r}, nil
}

// Dimension returns n for A^n.
func (A *AffineSpace) Dimension() int { return A.ring.NumVars() }

// CoordinateRing returns the coordinate ring.
func (A *AffineSpace) CoordinateRing() *mpoly.Ring { return A.ring }

// BaseField returns the coefficient field.
func (A *AffineSpace) BaseField() *mpoly.Field { return A.ring.Field() }

// IsProjective reports false.
func (A *AffineSpace) IsProjective() bool { return false }

func (A *AffineSpace) String() string {
	return fmt.Sprintf("A^%d over %s", A.Dimension(), A.BaseField())
}
