// SPDX-License-Identifier: MIT
// Package matrix - numeric conversions.
//
// Purpose:
//   - Narrow float64 data into the integer domain with math.Floor.
//   - Widen Sequence / Matrix values into float64 for external consumers.
//
// Contract:
//   - Ragged input keeps its row lengths in both directions.
//   - Values outside the int range are not guarded; the conversion follows Go
//     semantics for float64 → int.

package matrix

import "math"

// FloorSequence returns ⌊x[i]⌋ for every element.
// Complexity: O(n).
func FloorSequence(x []float64) Sequence {
	out := make(Sequence, len(x))
	for i, v := range x {
		out[i] = int(math.Floor(v))
	}

	return out
}

// FloorMatrix returns ⌊x[i][j]⌋ for every element, row by row.
// Complexity: O(total elements).
func FloorMatrix(x [][]float64) Matrix {
	out := make(Matrix, len(x))
	for i, row := range x {
		out[i] = FloorSequence(row)
	}

	return out
}

// Float64s widens the elements to float64.
func (s Sequence) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}

// Float64s widens the elements to float64, one slice per row.
func (m Matrix) Float64s() [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = Sequence(row).Float64s()
	}

	return out
}
