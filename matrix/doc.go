// SPDX-License-Identifier: MIT

// Package matrix offers deterministic structural editing and reduction over
// integer sequences and rectangular integer matrices.
//
// The matrix package provides:
//
//   - Shape constructors (NewDiagonal, NewIdentity, NewFilled, NewZeros).
//   - Transpose, and column edits built as transpose → row edit → transpose.
//   - Extraction by inclusive range, by index list, by row/column and along
//     generalized diagonals with a signed offset.
//   - Insertion, deletion (by range or by index set) and merging.
//   - Reductions: Min/Max with index tracking, Sum, Product and their
//     cumulative (prefix-scan) forms, over a Sequence or column-wise over a
//     Matrix.
//   - Float64 conversions (FloorMatrix, Float64s) and plain-text Format.
//
// Every operation returns freshly allocated storage; inputs are never
// mutated or aliased. Failures are reported with the sentinel errors in
// errors.go, wrapped with the operation name; match them with errors.Is.
//
// Ranges are inclusive: RowsRange(m, 1, 2) copies rows 1 and 2.
//
// See the examples in this package for usage patterns.
package matrix
