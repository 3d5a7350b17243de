package ratmat

// Package ratmat implements dense matrices over the rational numbers with
// exact arithmetic. It is self-contained and provides the row reduction,
// rank and determinant routines behind quadratic-form analysis and the
// numeric cross-checks in the test suites.

import (
	"fmt"
	"math/big"
)

// Matrix is a dense rows x cols matrix of rationals. Entries are never nil.
type Matrix struct {
	rows, cols int
	a          [][]*big.Rat
}

// New returns a zero matrix of the given shape.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("ratmat: invalid shape %dx%d", rows, cols))
	}
	a := make([][]*big.Rat, rows)
	for i := range a {
		a[i] = make([]*big.Rat, cols)
		for j := range a[i] {
			a[i][j] = new(big.Rat)
		}
	}
	return &Matrix{rows: rows, cols: cols, a: a}
}

// FromRows builds a matrix from row slices. Rows must be non-empty and of
// equal length; entries may be nil and are read as zero.
func FromRows(rows [][]*big.Rat) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("ratmat: empty matrix")
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("ratmat: row %d has %d entries, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v != nil {
				m.a[i][j].Set(v)
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns entry (i, j). The returned value is shared; use Set to write.
func (m *Matrix) At(i, j int) *big.Rat {
	m.check(i, j)
	return m.a[i][j]
}

// Set writes entry (i, j).
func (m *Matrix) Set(i, j int, v *big.Rat) {
	m.check(i, j)
	m.a[i][j].Set(v)
}

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	out := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.a[i][j].Set(m.a[i][j])
		}
	}
	return out
}

// RREF returns the reduced row echelon form of m together with the pivot
// column of each nonzero row. m is not modified.
func (m *Matrix) RREF() (*Matrix, []int) {
	r := m.Clone()
	var pivots []int
	row := 0
	for col := 0; col < r.cols && row < r.rows; col++ {
		pivot := -1
		for i := row; i < r.rows; i++ {
			if r.a[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		r.a[row], r.a[pivot] = r.a[pivot], r.a[row]
		inv := new(big.Rat).Inv(r.a[row][col])
		for j := col; j < r.cols; j++ {
			r.a[row][j].Mul(r.a[row][j], inv)
		}
		for i := 0; i < r.rows; i++ {
			if i == row || r.a[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(r.a[i][col])
			for j := col; j < r.cols; j++ {
				t := new(big.Rat).Mul(factor, r.a[row][j])
				r.a[i][j].Sub(r.a[i][j], t)
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return r, pivots
}

// Rank returns the rank of m.
func (m *Matrix) Rank() int {
	_, pivots := m.RREF()
	return len(pivots)
}

// Det returns the determinant of a square matrix by Gaussian elimination.
func (m *Matrix) Det() *big.Rat {
	if m.rows != m.cols {
		panic(fmt.Sprintf("ratmat: determinant of %dx%d matrix", m.rows, m.cols))
	}
	w := m.Clone()
	det := big.NewRat(1, 1)
	for col := 0; col < w.cols; col++ {
		pivot := -1
		for i := col; i < w.rows; i++ {
			if w.a[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return new(big.Rat)
		}
		if pivot != col {
			w.a[col], w.a[pivot] = w.a[pivot], w.a[col]
			det.Neg(det)
		}
		det.Mul(det, w.a[col][col])
		inv := new(big.Rat).Inv(w.a[col][col])
		for i := col + 1; i < w.rows; i++ {
			if w.a[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Mul(w.a[i][col], inv)
			for j := col; j < w.cols; j++ {
				t := new(big.Rat).Mul(factor, w.a[col][j])
				w.a[i][j].Sub(w.a[i][j], t)
			}
		}
	}
	return det
}

// SplitRank2 factors the quadratic form of a symmetric matrix into two
// rational linear forms: x^T m x = (u.x)(v.x). It reports false when the
// rank exceeds two, when the form is zero, or when the factorization would
// need an irrational square root. Rank one returns proportional u and v.
func (m *Matrix) SplitRank2() (u, v []*big.Rat, ok bool) {
	if m.rows != m.cols {
		panic(fmt.Sprintf("ratmat: quadratic form from %dx%d matrix", m.rows, m.cols))
	}
	if m.Rank() > 2 {
		return nil, nil, false
	}
	n := m.rows
	p := -1
	for i := 0; i < n; i++ {
		if m.a[i][i].Sign() != 0 {
			p = i
			break
		}
	}
	if p < 0 {
		return m.splitHyperbolic()
	}
	a := new(big.Rat).Set(m.a[p][p])
	row := make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		row[j] = new(big.Rat).Set(m.a[p][j])
	}
	// residual = m - (1/a) row row^T has rank one less
	resid := m.Clone()
	inva := new(big.Rat).Inv(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t := new(big.Rat).Mul(row[i], row[j])
			t.Mul(t, inva)
			resid.a[i][j].Sub(resid.a[i][j], t)
		}
	}
	q := -1
	zero := true
	for i := 0; i < n && q < 0; i++ {
		for j := 0; j < n; j++ {
			if resid.a[i][j].Sign() != 0 {
				zero = false
				if i == j {
					q = i
					break
				}
			}
		}
	}
	if zero {
		// pure square: form = (1/a)(row.x)^2
		u = make([]*big.Rat, n)
		v = make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			u[j] = new(big.Rat).Mul(row[j], inva)
			v[j] = new(big.Rat).Set(row[j])
		}
		return u, v, true
	}
	if q < 0 {
		// nonzero residual with zero diagonal cannot have rank one
		return nil, nil, false
	}
	b := new(big.Rat).Set(resid.a[q][q])
	row2 := make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		row2[j] = new(big.Rat).Set(resid.a[q][j])
	}
	invb := new(big.Rat).Inv(b)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t := new(big.Rat).Mul(row2[i], row2[j])
			t.Mul(t, invb)
			t.Sub(resid.a[i][j], t)
			if t.Sign() != 0 {
				return nil, nil, false
			}
		}
	}
	// form = (1/a)(row.x)^2 + (1/b)(row2.x)^2; factors over Q exactly when
	// -a/b is a square
	ratio := new(big.Rat).Quo(a, b)
	ratio.Neg(ratio)
	d, ok2 := ratSqrt(ratio)
	if !ok2 {
		return nil, nil, false
	}
	u = make([]*big.Rat, n)
	v = make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		dj := new(big.Rat).Mul(d, row2[j])
		u[j] = new(big.Rat).Sub(row[j], dj)
		u[j].Mul(u[j], inva)
		v[j] = new(big.Rat).Add(row[j], dj)
	}
	if !m.matchesProduct(u, v) {
		return nil, nil, false
	}
	return u, v, true
}

// splitHyperbolic handles the zero-diagonal case: the form is a product of
// two linear forms through any nonzero cross pair, checked entrywise.
func (m *Matrix) splitHyperbolic() (u, v []*big.Rat, ok bool) {
	n := m.rows
	pi, qi := -1, -1
	for i := 0; i < n && pi < 0; i++ {
		for j := i + 1; j < n; j++ {
			if m.a[i][j].Sign() != 0 {
				pi, qi = i, j
				break
			}
		}
	}
	if pi < 0 {
		return nil, nil, false
	}
	c := new(big.Rat).Add(m.a[pi][qi], m.a[pi][qi])
	invc := new(big.Rat).Inv(c)
	u = make([]*big.Rat, n)
	v = make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		u[j] = new(big.Rat)
		v[j] = new(big.Rat)
	}
	u[pi].SetInt64(1)
	v[qi].Set(c)
	for j := 0; j < n; j++ {
		if j == pi || j == qi {
			continue
		}
		u[j].Add(m.a[qi][j], m.a[qi][j])
		u[j].Mul(u[j], invc)
		v[j].Add(m.a[pi][j], m.a[pi][j])
	}
	if !m.matchesProduct(u, v) {
		return nil, nil, false
	}
	return u, v, true
}

// matchesProduct checks m == (u v^T + v u^T)/2 entrywise.
func (m *Matrix) matchesProduct(u, v []*big.Rat) bool {
	half := big.NewRat(1, 2)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t := new(big.Rat).Mul(u[i], v[j])
			s := new(big.Rat).Mul(v[i], u[j])
			t.Add(t, s)
			t.Mul(t, half)
			if t.Cmp(m.a[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// ratSqrt returns the square root of x when it is a rational square.
func ratSqrt(x *big.Rat) (*big.Rat, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	num, den := x.Num(), x.Denom()
	sn := new(big.Int).Sqrt(num)
	sd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 {
		return nil, false
	}
	if new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(sn, sd), true
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("ratmat: index (%d,%d) out of %dx%d", i, j, m.rows, m.cols))
	}
}

func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				s += " "
			}
			s += m.a[i][j].RatString()
		}
		s += "\n"
	}
	return s
}
