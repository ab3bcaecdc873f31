// SPDX-License-Identifier: MIT
// Package matrix - structural editor: merge.
//
// Purpose:
//   - Merge: concatenate sequences in argument order.
//   - MergeRows: stack sequences as rows (ragged-tolerant).
//   - MergeColumns: place k equal-length sequences side by side as columns.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMergeColumns = "MergeColumns"
)

// Merge concatenates all inputs into one Sequence of length Σ len(seqs[i]).
// No inputs yield an empty Sequence.
// Complexity: O(total length).
func Merge(seqs ...Sequence) Sequence {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make(Sequence, 0, total)
	for _, s := range seqs {
		out = append(out, s...)
	}

	return out
}

// MergeRows stacks each input as one row of a new Matrix, copying every row.
// Rows may differ in length; the result is then ragged.
// Complexity: O(total length).
func MergeRows(seqs ...Sequence) Matrix {
	out := make(Matrix, len(seqs))
	for i, s := range seqs {
		out[i] = s.Clone()
	}

	return out
}

// MergeColumns builds an m×k Matrix whose column j equals seqs[j].
// Implementation:
//   - Stage 1: require k ≥ 1 (row count is inferred from seqs[0]).
//   - Stage 2: require len(seqs[j]) == m for every j.
//   - Stage 3: fill out[i][j] = seqs[j][i] in i→j order.
//
// Errors:
//   - ErrEmpty when no inputs are given.
//   - ErrDimensionMismatch on unequal lengths.
//
// Complexity:
//   - Time O(m*k), Space O(m*k).
//
// AI-Hints:
//   - Column(MergeColumns(a, b), 1) reproduces b exactly.
func MergeColumns(seqs ...Sequence) (Matrix, error) {
	if len(seqs) == 0 {
		return nil, matrixErrorf(opMergeColumns, ErrEmpty)
	}
	m := len(seqs[0])
	for j, s := range seqs {
		if err := ValidateVecLen(s, m); err != nil {
			return nil, matrixErrorf(opMergeColumns, fmt.Errorf("input %d: %w", j, err))
		}
	}
	out := allocMatrix(m, len(seqs))
	for i := 0; i < m; i++ {
		for j, s := range seqs {
			out[i][j] = s[i]
		}
	}

	return out, nil
}
