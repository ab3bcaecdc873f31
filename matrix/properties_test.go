// SPDX-License-Identifier: MIT
// Package matrix_test - algebraic properties over seeded random inputs.
//
// Each property is checked on a spread of shapes (tall, wide, square, single
// row, single column) with fixed seeds, so failures reproduce exactly.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intarray/matrix"
)

var propShapes = [][2]int{{1, 1}, {1, 6}, {6, 1}, {3, 5}, {5, 3}, {7, 7}}

func TestProperty_TransposeRoundTrip(t *testing.T) {
	t.Parallel()

	for k, sh := range propShapes {
		m := randMatrix(t, sh[0], sh[1], int64(k))
		tt, err := matrix.Transpose(m)
		require.NoError(t, err)
		back, err := matrix.Transpose(tt)
		require.NoError(t, err)
		require.Equal(t, m, back, "shape %v", sh)
	}
}

func TestProperty_InsertDeleteInverse(t *testing.T) {
	t.Parallel()

	x := randSequence(t, 8, 11)
	y := []int{100, 200, 300}
	for at := 0; at <= len(x); at++ {
		ins, err := matrix.Insert(x, at, y)
		require.NoError(t, err)

		idx := make([]int, len(y))
		for k := range idx {
			idx[k] = at + k
		}
		back, err := matrix.Delete(ins, idx)
		require.NoError(t, err)
		require.Equal(t, x, back, "at=%d", at)

		byRange, err := matrix.DeleteRange(ins, at, at+len(y)-1)
		require.NoError(t, err)
		require.Equal(t, x, byRange, "at=%d", at)
	}
}

func TestProperty_RowColumnDuality(t *testing.T) {
	t.Parallel()

	for k, sh := range propShapes {
		m := randMatrix(t, sh[0], sh[1], int64(100+k))
		idx := []int{sh[1] - 1, 0, sh[1] - 1}

		cols, err := matrix.SelectColumns(m, idx)
		require.NoError(t, err)

		tm, err := matrix.Transpose(m)
		require.NoError(t, err)
		rows, err := matrix.SelectRows(tm, idx)
		require.NoError(t, err)
		want, err := matrix.Transpose(rows)
		require.NoError(t, err)

		require.Equal(t, want, cols, "shape %v", sh)
	}
}

func TestProperty_CumulativeIdentity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 9; n++ {
		x := randSequence(t, n, int64(n))
		require.Equal(t, matrix.Sum(x), matrix.CumSum(x)[n-1])
		require.Equal(t, matrix.Product(x), matrix.CumProduct(x)[n-1])
	}
}

func TestProperty_MinMaxIndexConsistency(t *testing.T) {
	t.Parallel()

	for k, sh := range propShapes {
		m := randMatrix(t, sh[0], sh[1], int64(200+k))
		for i := range m { // force ties
			m[i][0] = 3
		}
		mins, err := matrix.ColMin(m)
		require.NoError(t, err)
		minIdx, err := matrix.ColMinIndex(m)
		require.NoError(t, err)
		maxs, err := matrix.ColMax(m)
		require.NoError(t, err)
		maxIdx, err := matrix.ColMaxIndex(m)
		require.NoError(t, err)

		for j := 0; j < m.Cols(); j++ {
			require.Equal(t, mins[j], m[minIdx[j]][j])
			require.Equal(t, maxs[j], m[maxIdx[j]][j])
			for i := 0; i < minIdx[j]; i++ {
				require.Greater(t, m[i][j], mins[j], "earlier row holds the minimum")
			}
		}
		require.Equal(t, 0, minIdx[0], "tie must resolve to row 0")
		require.Equal(t, 0, maxIdx[0], "tie must resolve to row 0")
	}
}

func TestProperty_MergeColumnsInverse(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			in := make([]matrix.Sequence, k)
			for j := range in {
				in[j] = randSequence(t, 5, int64(300+j))
			}
			m, err := matrix.MergeColumns(in...)
			require.NoError(t, err)
			for j := range in {
				col, err := matrix.Column(m, j)
				require.NoError(t, err)
				require.Equal(t, in[j], col)
			}
		})
	}
}

func TestProperty_ColumnOpsMatchTransposedRowOps(t *testing.T) {
	t.Parallel()

	m := randMatrix(t, 4, 6, 42)
	viaCols, err := matrix.DeleteColumnsRange(m, 1, 3)
	require.NoError(t, err)
	viaIdx, err := matrix.DeleteColumns(m, []int{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, viaCols, viaIdx)
}

func TestProperty_RepeatedDeleteIndicesActAsSet(t *testing.T) {
	t.Parallel()

	x := randSequence(t, 10, 77)
	unique := []int{7, 1, 4}
	repeated := []int{1, 7, 4, 1, 7, 7}
	for _, mb := range memberships {
		want, err := matrix.Delete(x, unique, mb.opt)
		require.NoError(t, err)
		got, err := matrix.Delete(x, repeated, mb.opt)
		require.NoError(t, err)
		require.Equal(t, want, got, mb.name)
		require.Len(t, got, len(x)-len(unique), mb.name)
	}
}
