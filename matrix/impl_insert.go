// SPDX-License-Identifier: MIT
// Package matrix - structural editor: insertion.
//
// Purpose:
//   - Splice values into a Sequence, rows into a Matrix, and columns into a
//     Matrix (the latter through byColumns over InsertRows).
//
// Contract:
//   - The insertion point `before` is in [0, n]; n appends.
//   - Elements before `before` keep their positions; the rest shift by the
//     number of inserted items.
//   - New rows must have Cols() elements, new columns Rows() elements.

package matrix

// Operation name constants for unified error wrapping.
const (
	opInsert        = "Insert"
	opInsertRows    = "InsertRows"
	opInsertColumns = "InsertColumns"
)

// Insert returns s with values spliced in immediately before position before.
// Result length is len(s)+len(values).
//
// Errors: ErrOutOfRange when before ∉ [0, len(s)].
// Complexity: O(len(s)+len(values)).
func Insert(s Sequence, before int, values []int) (Sequence, error) {
	if err := ValidateInsertPosition(len(s), before); err != nil {
		return nil, matrixErrorf(opInsert, err)
	}
	out := make(Sequence, len(s)+len(values))
	copy(out, s[:before])
	copy(out[before:], values)
	copy(out[before+len(values):], s[before:])

	return out, nil
}

// InsertRows returns m with newRows inserted immediately before row `before`.
// Implementation:
//   - Stage 1: ValidateShape(m); ValidateInsertPosition against Rows().
//   - Stage 2: ValidateVecLen(row, Cols()) for every new row.
//   - Stage 3: allocate (r+k)×c and copy head rows, new rows, tail rows.
//
// Errors:
//   - ErrEmpty, ErrNotRectangular, ErrOutOfRange, ErrDimensionMismatch.
//
// Complexity:
//   - Time O((r+k)*c), Space O((r+k)*c).
func InsertRows(m Matrix, before int, newRows [][]int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opInsertRows, err)
	}
	r, c := m.Shape()
	if err := ValidateInsertPosition(r, before); err != nil {
		return nil, matrixErrorf(opInsertRows, err)
	}
	for k, row := range newRows {
		if err := ValidateVecLen(row, c); err != nil {
			return nil, matrixErrorf(opInsertRows, indexErrorf("new row", k, err))
		}
	}

	k := len(newRows)
	out := allocMatrix(r+k, c)
	for i := 0; i < before; i++ { // head: unchanged positions
		copy(out[i], m[i])
	}
	for i, row := range newRows { // inserted block
		copy(out[before+i], row)
	}
	for i := before; i < r; i++ { // tail: shifted by k
		copy(out[i+k], m[i])
	}

	return out, nil
}

// InsertColumns returns m with newCols inserted immediately before column
// `before`; each new column must have Rows() elements.
// Defined as Transpose(InsertRows(Transpose(m), before, newCols)).
//
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange, ErrDimensionMismatch.
// Complexity: O(r*(c+k)).
func InsertColumns(m Matrix, before int, newCols [][]int) (Matrix, error) {
	return byColumns(opInsertColumns, m, func(t Matrix) (Matrix, error) {
		return InsertRows(t, before, newCols)
	})
}
