// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the editor and
//     reduction tests.
//   - Keep every fixture freshly allocated so tests can assert that inputs
//     are never mutated.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intarray/matrix"
)

// fixtureA returns the 5×5 reference matrix used by the diagonal and
// sub-matrix scenarios.
func fixtureA() matrix.Matrix {
	return matrix.Matrix{
		{0, 1, 2, 3, 4},
		{1, 7, 8, 9, 10},
		{2, 13, 14, 15, 16},
		{3, 19, 20, 21, 22},
		{4, 25, 26, 27, 28},
	}
}

// fixtureTall returns a 4×2 matrix (more rows than columns).
func fixtureTall() matrix.Matrix {
	return matrix.Matrix{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
}

// fixtureWide returns a 2×4 matrix (more columns than rows).
func fixtureWide() matrix.Matrix {
	return matrix.Matrix{{1, 2, 3, 4}, {5, 6, 7, 8}}
}

// ragged returns a matrix whose rows differ in length.
func ragged() matrix.Matrix {
	return matrix.Matrix{{1, 2, 3}, {4, 5}}
}

// randMatrix FILLS an r×c matrix with values in [-50, 50) from a fixed seed.
// Deterministic: same (r, c, seed) always yields the same matrix.
func randMatrix(tb testing.TB, r, c int, seed int64) matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewZeros(r, c)
	require.NoError(tb, err)
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Intn(100) - 50
		}
	}

	return m
}

// randSequence returns n deterministic values in [-50, 50).
func randSequence(tb testing.TB, n int, seed int64) matrix.Sequence {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	s := make(matrix.Sequence, n)
	for i := range s {
		s[i] = rng.Intn(100) - 50
	}

	return s
}

// requireUnchanged fails when m no longer equals its snapshot.
func requireUnchanged(tb testing.TB, snapshot, m matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, snapshot, m, "input matrix was mutated")
}
