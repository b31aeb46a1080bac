// Package matrix provides the dense point store shared by the statclass
// generators.
//
// What:
//
//   - Dense is a flat, row-major float64 matrix (offset = i*cols + j).
//   - Zero-row shapes are legal: a generator asked for no points returns an
//     empty (0, d) matrix that still reports its column count.
//   - Dense satisfies gonum's mat.Matrix (Dims, At, T), so any gonum routine
//     (mat.Formatted, mat.Equal, stat.Mean over a column, ...) accepts it.
//
// Why:
//
//   - Generators hand out independent copies; Dense makes copying explicit
//     (Clone, Slice, Row, Col, RawData) and never aliases caller memory.
//
// Complexity:
//
//   - NewDense / NewDenseFrom / Clone / Slice: O(r*c) time and memory.
//   - At / Get / Set: O(1).
//
// Errors:
//
//   - ErrBadShape: negative row count or non-positive column count.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrDimensionMismatch: backing data length does not equal rows*cols.
package matrix
