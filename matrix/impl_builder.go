// SPDX-License-Identifier: MIT
// Package matrix - shape constructors.
//
// Purpose:
//   - Produce new matrices/sequences of given dimensions pre-filled with
//     constants (diagonal matrix, constant fill).
//   - These are leaves: they depend on no other operation of the package.
//
// Contract:
//   - NewDiagonal requires size > 0 (ErrInvalidDimensions otherwise).
//   - NewFilled / NewFilledSequence accept zero dimensions and reject
//     negative ones (ErrInvalidDimensions).
//   - A rows×0 fill yields rows empty rows; it is legal output but invalid
//     input to width-dependent operations.
//
// Complexity quicksheet:
//   - NewDiagonal: O(size²) zero-init + O(size) writes.
//   - NewFilled: O(rows*cols). NewFilledSequence: O(length).

package matrix

// Operation name constants for unified error wrapping.
const (
	opNewDiagonal       = "NewDiagonal"
	opNewFilled         = "NewFilled"
	opNewFilledSequence = "NewFilledSequence"
)

// allocMatrix returns rows×cols zeros backed by ONE contiguous buffer.
// Row slices are capacity-clipped so that appending to a row can never
// overwrite its neighbour.
func allocMatrix(rows, cols int) Matrix {
	buf := make([]int, rows*cols) // make() zero-fills deterministically
	out := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		base := i * cols
		out[i] = buf[base : base+cols : base+cols]
	}

	return out
}

// NewDiagonal returns a size×size matrix with c along the main diagonal and
// zeros everywhere else. With c = 1 this is the identity.
// Implementation:
//   - Stage 1: validate size > 0.
//   - Stage 2: allocate zeros, then write c at (i,i) in a single i-loop.
//
// Errors:
//   - ErrInvalidDimensions when size ≤ 0.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func NewDiagonal(size, c int) (Matrix, error) {
	if size <= 0 {
		return nil, matrixErrorf(opNewDiagonal, ErrInvalidDimensions)
	}
	out := allocMatrix(size, size)
	for i := 0; i < size; i++ { // fixed i order; one write per diagonal cell
		out[i][i] = c
	}

	return out, nil
}

// NewFilled returns a rows×cols matrix where every element equals c.
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0.
//   - Stage 2: allocate one flat buffer and fill it in row-major order.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewFilled(rows, cols, c int) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewFilled, ErrInvalidDimensions)
	}
	out := allocMatrix(rows, cols)
	if c != 0 { // zero fill already done by make()
		for _, row := range out {
			for j := range row {
				row[j] = c
			}
		}
	}

	return out, nil
}

// NewFilledSequence returns a sequence of the given length where every element equals c.
// Errors: ErrInvalidDimensions on negative length.
// Complexity: O(length).
func NewFilledSequence(length, c int) (Sequence, error) {
	if length < 0 {
		return nil, matrixErrorf(opNewFilledSequence, ErrInvalidDimensions)
	}
	out := make(Sequence, length)
	if c != 0 {
		for i := range out {
			out[i] = c
		}
	}

	return out, nil
}
