// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the two value types the package operates on and
// their O(1)/O(n) accessors. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
)

// Sequence is an ordered, fixed-length, zero-indexed list of integers.
// Operations never mutate a Sequence they receive; they return a new one.
type Sequence []int

// Matrix is an ordered list of rows. Every row has the same length except in
// the explicitly ragged-tolerant operations (MergeRows, RowLength, Clone,
// String, Format). Width is inferred from row 0.
type Matrix [][]int

// Len returns the number of elements.
// Complexity: O(1).
func (s Sequence) Len() int { return len(s) }

// Clone returns an independent copy. A nil Sequence clones to an empty one.
// Complexity: O(n).
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// String renders the sequence as "[a, b, c]".
func (s Sequence) String() string {
	var b strings.Builder
	writeRow(&b, s)

	return b.String()
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of row 0, or 0 when the matrix has no rows.
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsRectangular reports whether every row has the length of row 0.
// A matrix without rows is trivially rectangular.
// Complexity: O(rows).
func (m Matrix) IsRectangular() bool {
	if len(m) == 0 {
		return true
	}
	w := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != w {
			return false
		}
	}

	return true
}

// Clone returns a deep copy; ragged rows keep their own lengths.
// The returned Matrix shares no storage with m.
// Complexity: O(total elements).
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// String provides a readable row-wise dump for diagnostics, one "[a, b]" per line.
// Not for hot paths.
func (m Matrix) String() string {
	var b strings.Builder
	for _, row := range m { // fixed traversal order
		writeRow(&b, row)
		b.WriteString(_fmtNewline)
	}

	return b.String()
}

// writeRow appends "[v0, v1, ...]" to b.
func writeRow(b *strings.Builder, row []int) {
	b.WriteString(_fmtRowOpen)
	for j, v := range row {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(_fmtRowClose)
}
