// SPDX-License-Identifier: MIT
// Package matrix - transpose primitive and the column-by-transpose combinator.
//
// Purpose:
//   - Transpose(M): m×n → n×m with out[j][i] = M[i][j].
//   - byColumns: the single composition used by every column-oriented edit,
//     transpose → row operation → transpose. Row-oriented primitives are
//     implemented once; their column counterparts share their index math and
//     their edge-case behavior.
//
// Determinism & Performance:
//   - Fixed i→j traversal over the source (row-major reads, strided writes).
//   - One flat allocation per transpose (allocMatrix).
//   - A column edit costs two extra O(r*c) copies over its row counterpart;
//     this is the price of a single shared implementation.

package matrix

const opTranspose = "Transpose"

// Transpose returns Mᵀ. M must be non-empty and rectangular.
// Implementation:
//   - Stage 1: ValidateShape (ErrEmpty, ErrNotRectangular).
//   - Stage 2: copy through transposeRect.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Transpose(Transpose(M)) equals M for every valid M.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeRect(m, len(m[0])), nil
}

// transposeRect transposes a rectangular src whose rows all have srcCols
// elements. It never validates: callers guarantee the shape. srcCols is
// passed explicitly so a source with no rows still yields srcCols empty
// rows, which is what byColumns needs to restore an m×0 result.
func transposeRect(src Matrix, srcCols int) Matrix {
	out := allocMatrix(srcCols, len(src))
	for i, row := range src { // deterministic i→j order
		for j := 0; j < srcCols; j++ {
			out[j][i] = row[j]
		}
	}

	return out
}

// byColumns applies a row-oriented operation to the columns of m.
// Implementation:
//   - Stage 1: ValidateShape(m).
//   - Stage 2: t = mᵀ (rows of t are the columns of m).
//   - Stage 3: r = rowOp(t); errors are wrapped with the column op tag.
//   - Stage 4: return rᵀ with m.Rows() rows (length of every row of r).
//
// Behavior highlights:
//   - Row count of the result always equals m.Rows(), including the case
//     where rowOp removed every row of t (all columns deleted → m×0).
//
// Complexity:
//   - Time O(r*c) + cost(rowOp), Space O(r*c).
func byColumns(tag string, m Matrix, rowOp func(t Matrix) (Matrix, error)) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	t := transposeRect(m, len(m[0]))
	r, err := rowOp(t)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return transposeRect(r, len(m)), nil
}
