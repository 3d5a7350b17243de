package ideal

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"fano-scheme/mpoly"
)

// PolyMatrix is a dense matrix of polynomials from a single ring.
type PolyMatrix struct {
	Ring *mpoly.Ring

	rows, cols int
	a          [][]mpoly.Poly
}

// NewPolyMatrix returns a zero matrix of the given shape over r.
func NewPolyMatrix(r *mpoly.Ring, rows, cols int) *PolyMatrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("ideal: invalid matrix shape %dx%d", rows, cols))
	}
	a := make([][]mpoly.Poly, rows)
	for i := range a {
		a[i] = make([]mpoly.Poly, cols)
	}
	return &PolyMatrix{Ring: r, rows: rows, cols: cols, a: a}
}

// Rows returns the number of rows.
func (m *PolyMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *PolyMatrix) Cols() int { return m.cols }

// At returns entry (i, j).
func (m *PolyMatrix) At(i, j int) mpoly.Poly { return m.a[i][j] }

// Set writes entry (i, j).
func (m *PolyMatrix) Set(i, j int, p mpoly.Poly) { m.a[i][j] = p }

// Submatrix returns the matrix restricted to the given rows and columns, in
// the order listed.
func (m *PolyMatrix) Submatrix(rows, cols []int) *PolyMatrix {
	s := NewPolyMatrix(m.Ring, len(rows), len(cols))
	for i, ri := range rows {
		for j, cj := range cols {
			s.a[i][j] = m.a[ri][cj]
		}
	}
	return s
}

// Det returns the determinant by cofactor expansion along the first row.
func (m *PolyMatrix) Det() mpoly.Poly {
	if m.rows != m.cols {
		panic(fmt.Sprintf("ideal: determinant of %dx%d matrix", m.rows, m.cols))
	}
	r := m.Ring
	if m.rows == 1 {
		return m.a[0][0]
	}
	if m.rows == 2 {
		return r.Sub(r.Mul(m.a[0][0], m.a[1][1]), r.Mul(m.a[0][1], m.a[1][0]))
	}
	det := r.Zero()
	rest := make([]int, m.rows-1)
	for i := 1; i < m.rows; i++ {
		rest[i-1] = i
	}
	cols := make([]int, 0, m.cols-1)
	for j := 0; j < m.cols; j++ {
		if m.a[0][j].IsZero() {
			continue
		}
		cols = cols[:0]
		for c := 0; c < m.cols; c++ {
			if c != j {
				cols = append(cols, c)
			}
		}
		cof := r.Mul(m.a[0][j], m.Submatrix(rest, cols).Det())
		if j%2 == 1 {
			cof = r.Neg(cof)
		}
		det = r.Add(det, cof)
	}
	return det
}

// Minors returns every size x size minor. Row index sets run in ascending
// lexicographic order, and for each row set the column index sets do the
// same; with size equal to the row count this is exactly the column-subset
// order, which fixes the coordinate convention downstream.
func (m *PolyMatrix) Minors(size int) []mpoly.Poly {
	if size <= 0 || size > m.rows || size > m.cols {
		panic(fmt.Sprintf("ideal: %d-minors of %dx%d matrix", size, m.rows, m.cols))
	}
	rowSets := combin.Combinations(m.rows, size)
	colSets := combin.Combinations(m.cols, size)
	out := make([]mpoly.Poly, 0, len(rowSets)*len(colSets))
	for _, rs := range rowSets {
		for _, cs := range colSets {
			out = append(out, m.Submatrix(rs, cs).Det())
		}
	}
	return out
}
