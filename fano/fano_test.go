package fano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fano-scheme/ideal"
	"fano-scheme/mpoly"
	"fano-scheme/scheme"
)

func quadricP3(t *testing.T) *scheme.Variety {
	t.Helper()
	P3, err := scheme.NewProjectiveSpace(mpoly.QQ, 3)
	require.NoError(t, err)
	I, err := ideal.Parse(P3.CoordinateRing(), []string{"x0*x3 - x1*x2"})
	require.NoError(t, err)
	X, err := scheme.New(P3, I)
	require.NoError(t, err)
	return X
}

func TestPlaneLayout(t *testing.T) {
	R := mpoly.MustRing(mpoly.QQ, []string{"x0", "x1", "x2", "x3"}, mpoly.GrevLex{})
	pl := parametrize(R, 1)

	require.Equal(t, []string{
		"s1", "s2",
		"p1_1", "p1_2", "p1_3", "p1_4",
		"p2_1", "p2_2", "p2_3", "p2_4",
	}, pl.ring.Vars())
	assert.Equal(t, 0, pl.planeVar(1))
	assert.Equal(t, 1, pl.planeVar(2))
	assert.Equal(t, 2, pl.pointVar(1, 1))
	assert.Equal(t, 9, pl.pointVar(2, 4))

	// Coordinate i maps to the generic point of the span.
	assert.Equal(t, "s1*p1_1 + s2*p2_1", pl.ring.Format(pl.F.Images[0]))
	assert.Equal(t, "s1*p1_4 + s2*p2_4", pl.ring.Format(pl.F.Images[3]))
}

func TestPullbackQuadric(t *testing.T) {
	X := quadricP3(t)
	pl := parametrize(X.Ideal.Ring, 1)
	J2 := pl.pullback(X.Ideal)
	S := pl.ring

	// Three bilinear conditions from the s-coefficients plus the two plane
	// variables themselves.
	assert.Len(t, J2.Gens, 5)
	for _, src := range []string{
		"p1_1*p1_4 - p1_2*p1_3",
		"p1_1*p2_4 + p2_1*p1_4 - p1_2*p2_3 - p2_2*p1_3",
		"p2_1*p2_4 - p2_2*p2_3",
		"s1",
		"s2",
	} {
		assert.True(t, J2.Contains(S.MustParse(src)), "J2 misses %s", src)
	}
	assert.False(t, J2.Contains(S.MustParse("p1_1")))
}

func TestSchemePointsOfVariety(t *testing.T) {
	// k = 0: the scheme of points on X is X itself, rewritten in the
	// synthesized ambient coordinates.
	P2, err := scheme.NewProjectiveSpace(mpoly.QQ, 2)
	require.NoError(t, err)
	I, err := ideal.Parse(P2.CoordinateRing(), []string{"x1^2 - x0*x2"})
	require.NoError(t, err)
	X, err := scheme.New(P2, I)
	require.NoError(t, err)

	F, err := Scheme(0, X)
	require.NoError(t, err)

	assert.Equal(t, 2, F.Ambient.Dimension())
	assert.Equal(t, []string{"p0", "p1", "p2"}, F.Ambient.CoordinateRing().Vars())
	assert.Equal(t, "(p1^2 - p0*p2)", F.Ideal.FormatGroebner())
	assert.Equal(t, 1, F.Dim())
	assert.Equal(t, int64(2), F.Degree().Int64())
}

func TestGrassmannianLinesInPlane(t *testing.T) {
	// G(1,2) is all of the dual plane: the three 2x2 minors satisfy no
	// relation.
	P2, err := scheme.NewProjectiveSpace(mpoly.QQ, 2)
	require.NoError(t, err)
	G, err := GrassmannianOf(1, P2)
	require.NoError(t, err)

	assert.Equal(t, 2, G.Ambient.Dimension())
	assert.True(t, G.Ideal.IsZero())
	assert.Equal(t, 2, G.Dim())
	assert.Equal(t, int64(1), G.Degree().Int64())

	// The three-argument form takes the ambient as supplied.
	gr, err := scheme.NewProjectiveSpaceNamed(mpoly.QQ, []string{"p0", "p1", "p2"})
	require.NoError(t, err)
	G2, err := Grassmannian(1, 2, gr)
	require.NoError(t, err)
	assert.Same(t, gr, G2.Ambient)
	assert.True(t, G2.Ideal.IsZero())
}

func TestPlaneFillingSpace(t *testing.T) {
	// k equal to the ambient dimension: one plane, a point in P^0.
	P1, err := scheme.NewProjectiveSpace(mpoly.QQ, 1)
	require.NoError(t, err)
	G, err := GrassmannianOf(1, P1)
	require.NoError(t, err)

	assert.Equal(t, 0, G.Ambient.Dimension())
	assert.True(t, G.Ideal.IsZero())
}

func TestAutoMatchesExplicitAmbient(t *testing.T) {
	P2, err := scheme.NewProjectiveSpace(mpoly.QQ, 2)
	require.NoError(t, err)
	I, err := ideal.Parse(P2.CoordinateRing(), []string{"x1^2 - x0*x2"})
	require.NoError(t, err)
	X, err := scheme.New(P2, I)
	require.NoError(t, err)

	auto, err := Scheme(0, X)
	require.NoError(t, err)

	gr, err := scheme.NewProjectiveSpaceNamed(mpoly.QQ, []string{"p0", "p1", "p2"})
	require.NoError(t, err)
	explicit, err := SchemeIn(0, X, gr)
	require.NoError(t, err)

	assert.Same(t, gr, explicit.Ambient)
	assert.Equal(t, auto.Ideal.FormatGroebner(), explicit.Ideal.FormatGroebner())
	assert.Equal(t, auto.Ideal.Digest(), explicit.Ideal.Digest())
}

func TestValidation(t *testing.T) {
	X := quadricP3(t)

	t.Run("non-projective variety", func(t *testing.T) {
		A, err := scheme.NewAffineSpace(mpoly.QQ, 2)
		require.NoError(t, err)
		I, err := ideal.Parse(A.CoordinateRing(), []string{"x1*x2 - 1"})
		require.NoError(t, err)
		aff, err := scheme.New(A, I)
		require.NoError(t, err)

		_, err = Scheme(1, aff)
		var np *NotProjectiveError
		require.ErrorAs(t, err, &np)
		assert.Same(t, A, np.Ambient)
	})

	t.Run("non-projective ambient", func(t *testing.T) {
		A, err := scheme.NewAffineSpace(mpoly.QQ, 5)
		require.NoError(t, err)
		_, err = SchemeIn(1, X, A)
		var at *AmbientTypeError
		require.ErrorAs(t, err, &at)
		assert.Same(t, A, at.Space)
	})

	t.Run("wrong ambient dimension", func(t *testing.T) {
		P4, err := scheme.NewProjectiveSpace(mpoly.QQ, 4)
		require.NoError(t, err)
		_, err = SchemeIn(1, X, P4)
		var dm *DimensionMismatchError
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 4, dm.Actual)
		assert.Equal(t, 5, dm.Expected)
	})

	t.Run("plane dimension out of range", func(t *testing.T) {
		_, err := Scheme(-1, X)
		assert.ErrorContains(t, err, "plane dimension")
		_, err = Scheme(4, X)
		assert.ErrorContains(t, err, "plane dimension")
	})
}
