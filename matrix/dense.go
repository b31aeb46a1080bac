// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer both gonum-style accessors (At panics, as mat.Matrix requires) and
//     error-returning accessors (Get/Set) for user-facing code.
//   - Every accessor that returns a slice or a matrix returns a copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Get/Set: O(1); Clone/Slice: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxGet   = "Get"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxSlice = "Slice"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); r may be zero, c never is.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for gonum & fmt.Stringer conformance.
var (
	_ mat.Matrix   = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - rows == 0 is allowed: it models an empty point set of known width.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// Returns ErrBadShape for an invalid shape and ErrDimensionMismatch when
// len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols); it is part of gonum's mat.Matrix.
func (m *Dense) Dims() (r, c int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col). It panics on an out-of-range index,
// matching the contract of gonum's mat.Matrix. Use Get for an error return.
func (m *Dense) At(row, col int) float64 {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		panic(err)
	}

	return m.data[idx]
}

// Get retrieves the element at (row, col), returning ErrOutOfRange instead of
// panicking.
func (m *Dense) Get(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxGet, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// T returns the transpose as a gonum view; it is part of mat.Matrix.
func (m *Dense) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Slice returns an independent copy of the first n rows.
// n must satisfy 0 ≤ n ≤ Rows(); n == 0 yields an empty (0, Cols()) matrix.
// Complexity: O(n*c).
func (m *Dense) Slice(n int) (*Dense, error) {
	if n < 0 || n > m.r {
		return nil, denseErrorf(ctxSlice, n, 0, ErrOutOfRange)
	}
	buf := make([]float64, n*m.c)
	copy(buf, m.data[:n*m.c])

	return &Dense{r: n, c: m.c, data: buf}, nil
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// RawData returns a copy of the row-major backing buffer.
func (m *Dense) RawData() []float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return buf
}

// Rows2D returns the matrix as a freshly allocated [][]float64.
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports whether a and b have the same shape and bit-identical entries.
func Equal(a, b *Dense) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, v := range a.data {
		if math.Float64bits(v) != math.Float64bits(b.data[i]) {
			return false
		}
	}

	return true
}

// EqualApprox reports whether a and b have the same shape and all entries
// agree within the absolute tolerance eps. A NaN entry never matches.
func EqualApprox(a, b *Dense, eps float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}

	return floats.EqualFunc(a.data, b.data, func(x, y float64) bool {
		return scalar.EqualWithinAbs(x, y, eps)
	})
}

// ToGonum copies the matrix into a *mat.Dense. gonum cannot represent zero
// rows, so an empty matrix returns ErrBadShape.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 {
		return nil, fmt.Errorf("ToGonum(%d,%d): %w", m.r, m.c, ErrBadShape)
	}

	return mat.NewDense(m.r, m.c, m.RawData()), nil
}

// String implements fmt.Stringer using gonum's matrix formatter.
func (m *Dense) String() string {
	if m.r == 0 {
		return fmt.Sprintf("Dense(0x%d)[]", m.c)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense(%dx%d)\n", m.r, m.c)
	fmt.Fprintf(&sb, "%v", mat.Formatted(m, mat.Squeeze()))

	return sb.String()
}
