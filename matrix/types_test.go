// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intarray/matrix"
)

func TestMatrixAccessors(t *testing.T) {
	t.Parallel()

	m := fixtureWide()
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 4, c)
	require.True(t, m.IsRectangular())
	require.False(t, ragged().IsRectangular())

	var none matrix.Matrix
	require.Equal(t, 0, none.Rows())
	require.Equal(t, 0, none.Cols())
	require.True(t, none.IsRectangular())
}

func TestClone_Deep(t *testing.T) {
	t.Parallel()

	m := ragged()
	cp := matrix.CloneMatrix(m)
	require.Equal(t, m, cp)
	cp[1][0] = 0
	require.Equal(t, 4, m[1][0])

	var s matrix.Sequence
	sc := s.Clone()
	require.NotNil(t, sc)
	require.Equal(t, 0, sc.Len())
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1, -2, 3]", matrix.Sequence{1, -2, 3}.String())
	require.Equal(t, "[]", matrix.Sequence{}.String())
	require.Equal(t, "[1, 2, 3]\n[4, 5]\n", ragged().String())
}

func TestConversions(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.Sequence{1, -2, 0, 3}, matrix.FloorSequence([]float64{1.9, -1.1, 0, 3}))
	require.Equal(t,
		matrix.Matrix{{0, 2}, {-1}},
		matrix.FloorMatrix([][]float64{{0.5, 2.0}, {-0.5}}),
	)

	require.Equal(t, []float64{1, -2}, matrix.Sequence{1, -2}.Float64s())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5}}, ragged().Float64s())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 2 3\n4 5", matrix.Format("", ragged()...))
	require.Equal(t, "  1  -2\n 10   0", matrix.Format("%3d", []int{1, -2}, []int{10, 0}))
	require.Equal(t, "", matrix.Format(matrix.DefaultPattern))
	require.Equal(t, "7", matrix.Format("%d", matrix.Sequence{7}))
}
