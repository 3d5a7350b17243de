package fano

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"fano-scheme/scheme"
)

// NotProjectiveError reports a variety whose ambient space is not
// projective.
type NotProjectiveError struct {
	Ambient scheme.Space
}

func (e *NotProjectiveError) Error() string {
	return fmt.Sprintf("fano: variety ambient %v is not projective", e.Ambient)
}

// AmbientTypeError reports a Grassmannian ambient that is not a projective
// space.
type AmbientTypeError struct {
	Space scheme.Space
}

func (e *AmbientTypeError) Error() string {
	return fmt.Sprintf("fano: grassmannian ambient %v is not a projective space", e.Space)
}

// DimensionMismatchError reports a Grassmannian ambient of the wrong
// dimension: the Pluecker embedding of k-planes among n coordinates needs
// N+1 = C(n,k+1).
type DimensionMismatchError struct {
	Actual, Expected int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("fano: grassmannian ambient has dimension %d, want %d", e.Actual, e.Expected)
}

func validateProjective(X *scheme.Variety) error {
	if !X.Ambient.IsProjective() {
		return &NotProjectiveError{Ambient: X.Ambient}
	}
	return nil
}

func validatePlaneDimension(k, n int) error {
	if k < 0 || k+1 > n {
		return fmt.Errorf("fano: plane dimension %d out of range [0,%d]", k, n-1)
	}
	return nil
}

func validateAmbientType(grassAmbient scheme.Space) error {
	if !grassAmbient.IsProjective() {
		return &AmbientTypeError{Space: grassAmbient}
	}
	return nil
}

func validateAmbientDimension(n, k int, grassAmbient scheme.Space) error {
	expected := combin.Binomial(n, k+1) - 1
	if actual := grassAmbient.Dimension(); actual != expected {
		return &DimensionMismatchError{Actual: actual, Expected: expected}
	}
	return nil
}
