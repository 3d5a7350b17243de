package ratmat

import (
	"math/big"
	"testing"
)

func intMatrix(t *testing.T, rows [][]int64) *Matrix {
	t.Helper()
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rr[i][j] = new(big.Rat).SetInt64(v)
		}
	}
	m, err := FromRows(rr)
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	return m
}

func TestRREFAndRank(t *testing.T) {
	m := intMatrix(t, [][]int64{
		{1, 2, 3},
		{2, 4, 6},
		{1, 0, 1},
	})
	if got := m.Rank(); got != 2 {
		t.Fatalf("rank = %d want 2", got)
	}
	r, pivots := m.RREF()
	if len(pivots) != 2 || pivots[0] != 0 || pivots[1] != 1 {
		t.Fatalf("pivots = %v", pivots)
	}
	// Reduced rows have unit pivots and zeros above and below.
	for row, col := range pivots {
		if r.At(row, col).Cmp(big.NewRat(1, 1)) != 0 {
			t.Fatalf("pivot (%d,%d) = %s", row, col, r.At(row, col))
		}
		for i := 0; i < r.Rows(); i++ {
			if i != row && r.At(i, col).Sign() != 0 {
				t.Fatalf("column %d not cleared at row %d", col, i)
			}
		}
	}
	// RREF must not touch the receiver.
	if m.At(1, 0).Cmp(big.NewRat(2, 1)) != 0 {
		t.Fatal("receiver modified")
	}
}

func TestRankOne(t *testing.T) {
	m := intMatrix(t, [][]int64{
		{2, 4},
		{3, 6},
	})
	if got := m.Rank(); got != 1 {
		t.Fatalf("rank = %d want 1", got)
	}
}

func TestDet(t *testing.T) {
	m := intMatrix(t, [][]int64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 4},
	})
	// 2*(12-1) - 1*(4-0) = 18
	if got := m.Det(); got.Cmp(big.NewRat(18, 1)) != 0 {
		t.Fatalf("det = %s want 18", got)
	}
	singular := intMatrix(t, [][]int64{
		{1, 2},
		{2, 4},
	})
	if singular.Det().Sign() != 0 {
		t.Fatal("singular matrix must have zero determinant")
	}
	swap := intMatrix(t, [][]int64{
		{0, 1},
		{1, 0},
	})
	if got := swap.Det(); got.Cmp(big.NewRat(-1, 1)) != 0 {
		t.Fatalf("det = %s want -1", got)
	}
}

func TestDetRational(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, big.NewRat(1, 2))
	m.Set(0, 1, big.NewRat(1, 3))
	m.Set(1, 0, big.NewRat(1, 4))
	m.Set(1, 1, big.NewRat(1, 5))
	// 1/10 - 1/12 = 1/60
	if got := m.Det(); got.Cmp(big.NewRat(1, 60)) != 0 {
		t.Fatalf("det = %s want 1/60", got)
	}
}

func checkFactors(t *testing.T, m *Matrix) ([]*big.Rat, []*big.Rat) {
	t.Helper()
	u, v, ok := m.SplitRank2()
	if !ok {
		t.Fatal("form did not split")
	}
	half := big.NewRat(1, 2)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			p := new(big.Rat).Mul(u[i], v[j])
			q := new(big.Rat).Mul(v[i], u[j])
			p.Add(p, q)
			p.Mul(p, half)
			if p.Cmp(m.At(i, j)) != 0 {
				t.Fatalf("product mismatch at (%d,%d)", i, j)
			}
		}
	}
	return u, v
}

func TestSplitRank2Hyperbolic(t *testing.T) {
	// x*y
	m := New(2, 2)
	m.Set(0, 1, big.NewRat(1, 2))
	m.Set(1, 0, big.NewRat(1, 2))
	checkFactors(t, m)
}

func TestSplitRank2DifferenceOfSquares(t *testing.T) {
	// x^2 - y^2 = (x+y)(x-y)
	m := intMatrix(t, [][]int64{
		{1, 0},
		{0, -1},
	})
	checkFactors(t, m)
}

func TestSplitRank2PureSquare(t *testing.T) {
	// (x + 2y)^2
	m := intMatrix(t, [][]int64{
		{1, 2},
		{2, 4},
	})
	u, v := checkFactors(t, m)
	cross := new(big.Rat).Mul(u[0], v[1])
	other := new(big.Rat).Mul(u[1], v[0])
	if cross.Cmp(other) != 0 {
		t.Fatal("rank-one factors must be proportional")
	}
}

func TestSplitRank2MixedTerms(t *testing.T) {
	// x*(y + z)
	m := New(3, 3)
	m.Set(0, 1, big.NewRat(1, 2))
	m.Set(1, 0, big.NewRat(1, 2))
	m.Set(0, 2, big.NewRat(1, 2))
	m.Set(2, 0, big.NewRat(1, 2))
	checkFactors(t, m)
}

func TestSplitRank2Rejects(t *testing.T) {
	// x^2 + y^2 would need sqrt(-1)
	sum := intMatrix(t, [][]int64{
		{1, 0},
		{0, 1},
	})
	if _, _, ok := sum.SplitRank2(); ok {
		t.Fatal("x^2+y^2 must not split over Q")
	}
	// x*y + z^2 has rank three
	r3 := New(3, 3)
	r3.Set(0, 1, big.NewRat(1, 2))
	r3.Set(1, 0, big.NewRat(1, 2))
	r3.Set(2, 2, big.NewRat(1, 1))
	if _, _, ok := r3.SplitRank2(); ok {
		t.Fatal("rank-three form must not split")
	}
	if _, _, ok := New(2, 2).SplitRank2(); ok {
		t.Fatal("zero form must not split")
	}
}

func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := FromRows([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(2, 1)},
		{big.NewRat(3, 1)},
	})
	if err == nil {
		t.Fatal("expected error for ragged rows")
	}
	if _, err := FromRows(nil); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}
