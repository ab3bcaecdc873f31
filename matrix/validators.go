// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep editors and reductions minimal by delegating shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Duplicate detection for deletion sets lives with the membership
//    strategies (impl_delete.go) because its cost depends on the strategy.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotEmpty → Rectangular).
//  - Index validators work on a plain length n so that Sequence and Matrix
//    (rows or columns) share one set of bound semantics.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures m has at least one row and a non-empty row 0.
// Width-dependent operations cannot infer a column count otherwise.
// Complexity: O(1).
func ValidateNotEmpty(m Matrix) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmpty)
	}

	return nil
}

// ValidateRectangular ensures every row has the length of row 0.
// Complexity: O(rows).
func ValidateRectangular(m Matrix) error {
	if !m.IsRectangular() {
		return validatorErrorf("ValidateRectangular", ErrNotRectangular)
	}

	return nil
}

// ValidateShape – Composite: NotEmpty → Rectangular.
//
// Errors: ErrEmpty, ErrNotRectangular.
// Complexity: O(rows).
// AI-Hints: Use as the first step of every width-dependent operation.
func ValidateShape(m Matrix) error {
	if err := ValidateNotEmpty(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if err := ValidateRectangular(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Complexity: O(1).
func ValidateIndex(n, i int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", indexErrorf("index", i, ErrOutOfRange))
	}

	return nil
}

// ValidateInsertPosition ensures 0 ≤ before ≤ n (n itself appends).
// Complexity: O(1).
func ValidateInsertPosition(n, before int) error {
	if before < 0 || before > n {
		return validatorErrorf("ValidateInsertPosition", indexErrorf("position", before, ErrOutOfRange))
	}

	return nil
}

// ValidateRange ensures 0 ≤ lo ≤ hi < n for an inclusive range [lo, hi].
//
// Errors: ErrOutOfRange (also for hi < lo).
// Complexity: O(1).
func ValidateRange(n, lo, hi int) error {
	if lo < 0 || hi >= n || hi < lo {
		return validatorErrorf("ValidateRange", fmt.Errorf("[%d,%d] of %d: %w", lo, hi, n, ErrOutOfRange))
	}

	return nil
}

// ValidateIndexList ensures every element of idx lies in [0, n).
// Repeats and any order are accepted.
// Complexity: O(len(idx)).
func ValidateIndexList(n int, idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return validatorErrorf("ValidateIndexList", indexErrorf("index", i, ErrOutOfRange))
		}
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Complexity: O(1).
func ValidateVecLen(x []int, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("length %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateNonEmptySequence ensures len(s) ≥ 1.
// Complexity: O(1).
func ValidateNonEmptySequence(s Sequence) error {
	if len(s) == 0 {
		return validatorErrorf("ValidateNonEmptySequence", ErrEmpty)
	}

	return nil
}
