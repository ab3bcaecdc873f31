// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intarray/matrix"
)

// memberships runs a deletion subtest under both strategies.
var memberships = []struct {
	name string
	opt  matrix.Option
}{
	{"linear", matrix.WithLinearMembership()},
	{"bitmap", matrix.WithBitmapMembership()},
}

func TestDeleteRange(t *testing.T) {
	t.Parallel()

	s := matrix.Sequence{0, 1, 2, 3, 4}
	got, err := matrix.DeleteRange(s, 1, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Sequence{0, 4}, got)

	all, err := matrix.DeleteRange(s, 0, 4)
	require.NoError(t, err)
	require.Empty(t, all)

	_, err = matrix.DeleteRange(s, 3, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DeleteRange(s, 0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDeleteRowsRange(t *testing.T) {
	t.Parallel()

	m := fixtureTall()
	got, err := matrix.DeleteRowsRange(m, 1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.Matrix{{1, 2}, {7, 8}}, got)

	none, err := matrix.DeleteRowsRange(m, 0, 3)
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = matrix.DeleteRowsRange(m, 2, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDeleteColumnsRange(t *testing.T) {
	t.Parallel()

	m := fixtureWide()
	got, err := matrix.DeleteColumnsRange(m, 1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.Matrix{{1, 4}, {5, 8}}, got)

	empty, err := matrix.DeleteColumnsRange(m, 0, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Matrix{{}, {}}, empty)

	_, err = matrix.DeleteColumnsRange(m, -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	for _, mb := range memberships {
		t.Run(mb.name, func(t *testing.T) {
			s := matrix.Sequence{10, 11, 12, 13, 14}
			got, err := matrix.Delete(s, []int{3, 0}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Sequence{11, 12, 14}, got)
			require.Equal(t, matrix.Sequence{10, 11, 12, 13, 14}, s)

			same, err := matrix.Delete(s, nil, mb.opt)
			require.NoError(t, err)
			require.Equal(t, s, same)

			_, err = matrix.Delete(s, []int{1, 5}, mb.opt)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)

			// a repeated index deletes its position once
			rep, err := matrix.Delete(matrix.Sequence{10, 11, 12, 13}, []int{1, 1}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Sequence{10, 12, 13}, rep)

			rep, err = matrix.Delete(s, []int{4, 0, 4, 0, 4}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Sequence{11, 12, 13}, rep)
		})
	}
}

func TestDeleteRows(t *testing.T) {
	t.Parallel()

	for _, mb := range memberships {
		t.Run(mb.name, func(t *testing.T) {
			m := fixtureTall()
			got, err := matrix.DeleteRows(m, []int{2, 0}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Matrix{{3, 4}, {7, 8}}, got)

			none, err := matrix.DeleteRows(m, []int{0, 1, 2, 3}, mb.opt)
			require.NoError(t, err)
			require.Empty(t, none)

			rep, err := matrix.DeleteRows(matrix.Matrix{{0}, {1}, {2}}, []int{2, 0, 2}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Matrix{{1}}, rep)

			all, err := matrix.DeleteRows(m, []int{3, 2, 1, 0, 3, 1}, mb.opt)
			require.NoError(t, err)
			require.Empty(t, all)

			_, err = matrix.DeleteRows(m, []int{-1}, mb.opt)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestDeleteColumns(t *testing.T) {
	t.Parallel()

	for _, mb := range memberships {
		t.Run(mb.name, func(t *testing.T) {
			m := fixtureWide()
			snap := m.Clone()
			got, err := matrix.DeleteColumns(m, []int{3, 1}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Matrix{{1, 3}, {5, 7}}, got)
			requireUnchanged(t, snap, m)

			empty, err := matrix.DeleteColumns(m, []int{0, 1, 2, 3}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Matrix{{}, {}}, empty)

			rep, err := matrix.DeleteColumns(m, []int{0, 0, 2}, mb.opt)
			require.NoError(t, err)
			require.Equal(t, matrix.Matrix{{2, 4}, {6, 8}}, rep)

			_, err = matrix.DeleteColumns(m, []int{4}, mb.opt)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestDelete_StrategiesAgree(t *testing.T) {
	t.Parallel()

	m := randMatrix(t, 12, 9, 7)
	idx := []int{8, 2, 5, 0, 2, 8}
	lin, err := matrix.DeleteColumns(m, idx)
	require.NoError(t, err)
	bit, err := matrix.DeleteColumns(m, idx, matrix.WithBitmapMembership())
	require.NoError(t, err)
	require.Equal(t, lin, bit)
}
