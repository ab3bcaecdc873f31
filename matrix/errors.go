// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap sentinels with their op tag via
// matrixErrorf("Op", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty input -> ragged input -> index/range -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative
	// (fill) or non-positive (diagonal constructors).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index, a range bound or a diagonal offset
	// is outside the valid bounds of its operand (including i2 < i1).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that inputs required to share a dimension
	// do not (new row width for InsertRows, input lengths for MergeColumns).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmpty indicates that an operation needing at least one row, column or
	// element received none (Transpose, width inference, Min of nothing).
	ErrEmpty = errors.New("matrix: empty input")

	// ErrNotRectangular signals that a rectangular matrix was required but the
	// rows have differing lengths.
	ErrNotRectangular = errors.New("matrix: matrix is not rectangular")
)

// ALIASES matching the error kinds used in the package documentation.

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
var ErrShapeMismatch = ErrDimensionMismatch

// ErrEmptyInput names the same condition as ErrEmpty.
var ErrEmptyInput = ErrEmpty

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches the offending index to a sentinel for diagnostics.
func indexErrorf(what string, idx int, err error) error {
	return fmt.Errorf("%s %d: %w", what, idx, err)
}
