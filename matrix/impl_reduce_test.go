// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intarray/matrix"
)

// ------------------------------
// Sequence reductions
// ------------------------------

func TestSequenceExtremes(t *testing.T) {
	t.Parallel()

	s := matrix.Sequence{4, -1, 7, -1, 7, 0}
	minV, err := matrix.Min(s)
	require.NoError(t, err)
	require.Equal(t, -1, minV)

	maxV, err := matrix.Max(s)
	require.NoError(t, err)
	require.Equal(t, 7, maxV)

	// ties resolve to the first occurrence
	mi, err := matrix.MinIndex(s)
	require.NoError(t, err)
	require.Equal(t, 1, mi)

	ma, err := matrix.MaxIndex(s)
	require.NoError(t, err)
	require.Equal(t, 2, ma)
}

func TestSequenceExtremes_Empty(t *testing.T) {
	t.Parallel()

	fns := map[string]func(matrix.Sequence) (int, error){
		"Min":      matrix.Min,
		"Max":      matrix.Max,
		"MinIndex": matrix.MinIndex,
		"MaxIndex": matrix.MaxIndex,
	}
	for name, fn := range fns {
		_, err := fn(nil)
		require.ErrorIs(t, err, matrix.ErrEmpty, name)
	}
}

func TestSumProduct(t *testing.T) {
	t.Parallel()

	s := matrix.Sequence{2, 3, -4}
	require.Equal(t, 1, matrix.Sum(s))
	require.Equal(t, -24, matrix.Product(s))

	require.Equal(t, 0, matrix.Sum(nil))
	require.Equal(t, 1, matrix.Product(nil))
}

func TestCumulative(t *testing.T) {
	t.Parallel()

	s := matrix.Sequence{1, 2, 3, 4}
	require.Equal(t, matrix.Sequence{1, 3, 6, 10}, matrix.CumSum(s))
	require.Equal(t, matrix.Sequence{1, 2, 6, 24}, matrix.CumProduct(s))

	require.Empty(t, matrix.CumSum(nil))
	require.Empty(t, matrix.CumProduct(matrix.Sequence{}))
}

// ------------------------------
// Column-wise reductions
// ------------------------------

func TestColumnReductions(t *testing.T) {
	t.Parallel()

	m := matrix.Matrix{
		{3, 1, 5},
		{1, 4, 5},
		{2, 1, 0},
	}
	snap := m.Clone()

	tests := []struct {
		name string
		fn   func(matrix.Matrix) (matrix.Sequence, error)
		want matrix.Sequence
	}{
		{"ColMin", matrix.ColMin, matrix.Sequence{1, 1, 0}},
		{"ColMax", matrix.ColMax, matrix.Sequence{3, 4, 5}},
		{"ColMinIndex", matrix.ColMinIndex, matrix.Sequence{1, 0, 2}},
		{"ColMaxIndex", matrix.ColMaxIndex, matrix.Sequence{0, 1, 0}},
		{"ColSum", matrix.ColSum, matrix.Sequence{6, 6, 10}},
		{"ColProduct", matrix.ColProduct, matrix.Sequence{6, 4, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			_, err = tc.fn(nil)
			require.ErrorIs(t, err, matrix.ErrEmpty)
			_, err = tc.fn(ragged())
			require.ErrorIs(t, err, matrix.ErrNotRectangular)
		})
	}
	requireUnchanged(t, snap, m)
}

func TestColumnCumulative(t *testing.T) {
	t.Parallel()

	m := matrix.Matrix{{1, 2}, {3, 4}, {5, 6}}
	cs, err := matrix.ColCumSum(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Matrix{{1, 2}, {4, 6}, {9, 12}}, cs)

	cp, err := matrix.ColCumProduct(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Matrix{{1, 2}, {3, 8}, {15, 48}}, cp)

	_, err = matrix.ColCumSum(matrix.Matrix{{}})
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.ColCumProduct(ragged())
	require.ErrorIs(t, err, matrix.ErrNotRectangular)
}
