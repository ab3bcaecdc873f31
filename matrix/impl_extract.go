// SPDX-License-Identifier: MIT
// Package matrix - structural editor: extraction.
//
// Purpose:
//   - Copy rectangular regions, contiguous row/column ranges, arbitrary
//     row/column index lists, single rows/columns and generalized diagonals.
//   - StackColumn reads one cell position across a stack of matrices.
//   - Every result is a COPY; the input is never aliased or mutated.
//
// Contract:
//   - Matrix inputs must be non-empty and rectangular (ValidateShape).
//   - Ranges are inclusive [lo, hi] with 0 ≤ lo ≤ hi < n.
//   - Index lists may repeat and reorder freely; each entry must be in range.
//
// Complexity quicksheet:
//   - SubMatrixRange: O(h*w). SelectRows/SelectColumns: O(r*len(idx)).
//   - Row/Column/Range/Elements: O(result). Diagonal: O(min(r,c)).

package matrix

// Operation name constants for unified error wrapping.
const (
	opSubMatrixRange = "SubMatrixRange"
	opColumnsRange   = "ColumnsRange"
	opRowsRange      = "RowsRange"
	opSelectColumns  = "SelectColumns"
	opSelectRows     = "SelectRows"
	opColumn         = "Column"
	opRow            = "Row"
	opRange          = "Range"
	opElements       = "Elements"
	opDiagonal       = "Diagonal"
	opRowLength      = "RowLength"
	opStackColumn    = "StackColumn"
)

// SubMatrixRange copies rows [i1,i2] and columns [j1,j2] (inclusive).
// Implementation:
//   - Stage 1: ValidateShape; ValidateRange on both axes.
//   - Stage 2: allocate (i2-i1+1)×(j2-j1+1) and copy each row window.
//
// Errors:
//   - ErrEmpty, ErrNotRectangular, ErrOutOfRange.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func SubMatrixRange(m Matrix, i1, i2, j1, j2 int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opSubMatrixRange, err)
	}
	if err := ValidateRange(m.Rows(), i1, i2); err != nil {
		return nil, matrixErrorf(opSubMatrixRange, err)
	}
	if err := ValidateRange(m.Cols(), j1, j2); err != nil {
		return nil, matrixErrorf(opSubMatrixRange, err)
	}

	return subMatrix(m, i1, i2, j1, j2), nil
}

// subMatrix copies an already validated window.
func subMatrix(m Matrix, i1, i2, j1, j2 int) Matrix {
	h, w := i2-i1+1, j2-j1+1
	out := allocMatrix(h, w)
	for i := 0; i < h; i++ {
		copy(out[i], m[i+i1][j1:j2+1])
	}

	return out
}

// ColumnsRange copies columns [j1,j2] across all rows.
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O(r*w).
func ColumnsRange(m Matrix, j1, j2 int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opColumnsRange, err)
	}
	if err := ValidateRange(m.Cols(), j1, j2); err != nil {
		return nil, matrixErrorf(opColumnsRange, err)
	}

	return subMatrix(m, 0, m.Rows()-1, j1, j2), nil
}

// RowsRange copies rows [i1,i2] across all columns.
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O(h*c).
func RowsRange(m Matrix, i1, i2 int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opRowsRange, err)
	}
	if err := ValidateRange(m.Rows(), i1, i2); err != nil {
		return nil, matrixErrorf(opRowsRange, err)
	}

	return subMatrix(m, i1, i2, 0, m.Cols()-1), nil
}

// SelectColumns copies the columns listed in idx, in idx order.
// Column k of the result equals column idx[k] of m. Duplicates are allowed
// (repeated columns in the result); an empty idx yields r empty rows.
// Implementation:
//   - Stage 1: ValidateShape; ValidateIndexList against Cols().
//   - Stage 2: nested loops with direct indexing.
//
// Errors:
//   - ErrEmpty, ErrNotRectangular, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*len(idx)), Space O(r*len(idx)).
func SelectColumns(m Matrix, idx []int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}
	if err := ValidateIndexList(m.Cols(), idx); err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}
	out := allocMatrix(m.Rows(), len(idx))
	for i, row := range m {
		for k, j := range idx {
			out[i][k] = row[j]
		}
	}

	return out, nil
}

// SelectRows copies the rows listed in idx, in idx order.
// Duplicates are allowed; an empty idx yields a matrix with no rows.
//
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O(len(idx)*c).
//
// AI-Hints:
//   - SelectColumns(m, J) equals Transpose(SelectRows(Transpose(m), J)).
func SelectRows(m Matrix, idx []int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	if err := ValidateIndexList(m.Rows(), idx); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	out := allocMatrix(len(idx), m.Cols())
	for k, i := range idx {
		copy(out[k], m[i])
	}

	return out, nil
}

// Column copies column j as a Sequence of length Rows().
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
func Column(m Matrix, j int) (Sequence, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if err := ValidateIndex(m.Cols(), j); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	out := make(Sequence, len(m))
	for i, row := range m {
		out[i] = row[j]
	}

	return out, nil
}

// Row copies row i as a Sequence of length Cols().
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
func Row(m Matrix, i int) (Sequence, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := ValidateIndex(m.Rows(), i); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return Sequence(m[i]).Clone(), nil
}

// Range copies s[j1..j2] (inclusive).
// Errors: ErrOutOfRange.
func Range(s Sequence, j1, j2 int) (Sequence, error) {
	if err := ValidateRange(len(s), j1, j2); err != nil {
		return nil, matrixErrorf(opRange, err)
	}

	return s[j1 : j2+1].Clone(), nil
}

// Elements copies s[idx[0]], s[idx[1]], ... in idx order; repeats allowed.
// Errors: ErrOutOfRange.
func Elements(s Sequence, idx []int) (Sequence, error) {
	if err := ValidateIndexList(len(s), idx); err != nil {
		return nil, matrixErrorf(opElements, err)
	}
	out := make(Sequence, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out, nil
}

// diagonalLength returns the number of cells on the diagonal at offset of an
// m×n matrix. A result ≤ 0 means the offset lies outside the matrix.
// The case split differs for tall (n < m) and wide (n ≥ m) shapes because
// the range of offsets with full length min(m,n) does: [n-m, 0] when tall,
// [0, n-m] when wide. Keep the split as is; the boundary offsets depend on it.
func diagonalLength(m, n, offset int) int {
	if n < m {
		switch {
		case offset >= 0:
			return n - offset
		case offset < n-m:
			return m + offset
		default:
			return n
		}
	}
	switch {
	case offset <= 0:
		return m + offset
	case offset > n-m:
		return n - offset
	default:
		return m
	}
}

// Diagonal extracts the generalized diagonal at offset.
// Offset 0 is the main diagonal, offset > 0 a super-diagonal (starting at
// (0, offset)), offset < 0 a sub-diagonal (starting at (-offset, 0)).
// Implementation:
//   - Stage 1: ValidateShape.
//   - Stage 2: nd = diagonalLength(r, c, offset); nd ≤ 0 → ErrOutOfRange.
//   - Stage 3: out[k] = m[r0+k][c0+k] with r0 = max(0,-offset), c0 = max(0,offset).
//
// Behavior highlights:
//   - Out-of-range offsets fail; they are never clamped.
//
// Errors:
//   - ErrEmpty, ErrNotRectangular, ErrOutOfRange.
//
// Complexity:
//   - Time O(min(r,c)), Space O(min(r,c)).
func Diagonal(m Matrix, offset int) (Sequence, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	nd := diagonalLength(m.Rows(), m.Cols(), offset)
	if nd <= 0 {
		return nil, matrixErrorf(opDiagonal, indexErrorf("offset", offset, ErrOutOfRange))
	}
	r0, c0 := max(0, -offset), max(0, offset)
	out := make(Sequence, nd)
	for k := 0; k < nd; k++ {
		out[k] = m[r0+k][c0+k]
	}

	return out, nil
}

// RowLength returns the length of row i. Ragged-tolerant.
// Errors: ErrOutOfRange.
func RowLength(m Matrix, i int) (int, error) {
	if err := ValidateIndex(m.Rows(), i); err != nil {
		return 0, matrixErrorf(opRowLength, err)
	}

	return len(m[i]), nil
}

// StackColumn reads cell (j, k) of every matrix in stack, in stack order:
// out[i] = stack[i][j][k]. It is the depth-wise column of a 3-D array.
// Ragged-tolerant: each layer only needs a row j with at least k+1 cells.
//
// Errors: ErrEmpty (no layers), ErrOutOfRange (missing row or cell).
// Complexity: O(len(stack)).
func StackColumn(stack []Matrix, j, k int) (Sequence, error) {
	if len(stack) == 0 {
		return nil, matrixErrorf(opStackColumn, ErrEmpty)
	}
	out := make(Sequence, len(stack))
	for i, layer := range stack {
		if err := ValidateIndex(len(layer), j); err != nil {
			return nil, matrixErrorf(opStackColumn, indexErrorf("layer", i, err))
		}
		if err := ValidateIndex(len(layer[j]), k); err != nil {
			return nil, matrixErrorf(opStackColumn, indexErrorf("layer", i, err))
		}
		out[i] = layer[j][k]
	}

	return out, nil
}
