// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication: each facade delegates, it never re-implements.
//
// Determinism & Policy:
//   - Facades never change loop orders or edge-case policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Column edits are available both by range and by index list; the range
//     form skips index-set validation.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Thin alias of NewDiagonal(n, 1).
//
// Errors: ErrInvalidDimensions when n ≤ 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (Matrix, error) {
	return NewDiagonal(n, 1)
}

// NewZeros returns a rows×cols zero matrix.
// Thin alias of NewFilled(rows, cols, 0); zero dimensions are allowed.
//
// Errors: ErrInvalidDimensions on negative dimensions.
func NewZeros(rows, cols int) (Matrix, error) {
	return NewFilled(rows, cols, 0)
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Matrix.Clone.
// Complexity: O(total elements).
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrEmpty, ErrNotRectangular.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Shape())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// T is an alias for Transpose: returns mᵀ.
//
// AI-Hints: Good for small helpers and chaining.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// MainDiagonal is Diagonal(m, 0).
func MainDiagonal(m Matrix) (Sequence, error) { return Diagonal(m, 0) }

// AppendRows inserts newRows after the last row of m.
func AppendRows(m Matrix, newRows [][]int) (Matrix, error) {
	return InsertRows(m, m.Rows(), newRows)
}

// AppendColumns inserts newCols after the last column of m.
func AppendColumns(m Matrix, newCols [][]int) (Matrix, error) {
	return InsertColumns(m, m.Cols(), newCols)
}

// Flatten concatenates the rows of m (ragged rows included) in row order.
// Complexity: O(total elements).
func Flatten(m Matrix) Sequence {
	seqs := make([]Sequence, len(m))
	for i, row := range m {
		seqs[i] = row
	}

	return Merge(seqs...)
}
