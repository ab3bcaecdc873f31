// SPDX-License-Identifier: MIT
// Package matrix - structural editor: deletion.
//
// Purpose:
//   - Remove contiguous inclusive ranges (DeleteRange, DeleteRowsRange,
//     DeleteColumnsRange) and arbitrary index sets (Delete, DeleteRows,
//     DeleteColumns), closing the gap and preserving the order of the kept
//     elements.
//
// Index-set contract:
//   - Any order; every index in range (ErrOutOfRange). Repeats are allowed:
//     an index only marks its position as a member, so the result holds
//     n minus the number of DISTINCT members.
//   - Membership is tested by the strategy chosen through Options:
//     linear scan (default) or bitmap. Results and errors are identical.
//
// Complexity quicksheet:
//   - Range deletions: O(result).
//   - Set deletions: O(n·k + k²) linear, O(n+k) bitmap; plus O(result) copying.

package matrix

// Operation name constants for unified error wrapping.
const (
	opDeleteRange        = "DeleteRange"
	opDeleteRowsRange    = "DeleteRowsRange"
	opDeleteColumnsRange = "DeleteColumnsRange"
	opDelete             = "Delete"
	opDeleteRows         = "DeleteRows"
	opDeleteColumns      = "DeleteColumns"
)

// indexSet answers membership queries over a validated deletion set.
type indexSet interface {
	contains(i int) bool
}

// linearSet scans the raw index list on every query.
type linearSet []int

func (s linearSet) contains(i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}

	return false
}

// bitmapSet marks members in a dense flag slice of the operand length.
type bitmapSet []bool

func (s bitmapSet) contains(i int) bool { return s[i] }

// newIndexSet validates idx against an operand of length n and builds the
// membership structure selected by o. It also returns the number of distinct
// members, which sizes the result.
func newIndexSet(n int, idx []int, o Options) (indexSet, int, error) {
	if err := ValidateIndexList(n, idx); err != nil {
		return nil, 0, err
	}
	distinct := 0
	if o.membership == MembershipBitmap {
		flags := make(bitmapSet, n)
		for _, i := range idx {
			if !flags[i] {
				flags[i] = true
				distinct++
			}
		}

		return flags, distinct, nil
	}
	for k, i := range idx {
		if !linearSet(idx[:k]).contains(i) { // first occurrence only
			distinct++
		}
	}

	return linearSet(idx), distinct, nil
}

// DeleteRange returns s without s[j1..j2] (inclusive).
// Errors: ErrOutOfRange.
// Complexity: O(len(s)).
func DeleteRange(s Sequence, j1, j2 int) (Sequence, error) {
	if err := ValidateRange(len(s), j1, j2); err != nil {
		return nil, matrixErrorf(opDeleteRange, err)
	}
	out := make(Sequence, 0, len(s)-(j2-j1+1))
	out = append(out, s[:j1]...)
	out = append(out, s[j2+1:]...)

	return out, nil
}

// DeleteRowsRange returns m without rows [i1,i2]. Deleting every row yields
// a matrix with no rows.
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O((r-h)*c).
func DeleteRowsRange(m Matrix, i1, i2 int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opDeleteRowsRange, err)
	}
	r, c := m.Shape()
	if err := ValidateRange(r, i1, i2); err != nil {
		return nil, matrixErrorf(opDeleteRowsRange, err)
	}
	h := i2 - i1 + 1
	out := allocMatrix(r-h, c)
	for i := 0; i < i1; i++ {
		copy(out[i], m[i])
	}
	for i := i2 + 1; i < r; i++ {
		copy(out[i-h], m[i])
	}

	return out, nil
}

// DeleteColumnsRange returns m without columns [j1,j2]. Deleting every
// column yields Rows() empty rows.
// Implementation:
//   - Stage 1: ValidateShape; ValidateRange against Cols().
//   - Stage 2: per row, copy the head [0,j1) then the tail (j2, c).
//
// Errors:
//   - ErrEmpty, ErrNotRectangular, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*(c-w)), Space O(r*(c-w)).
func DeleteColumnsRange(m Matrix, j1, j2 int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opDeleteColumnsRange, err)
	}
	r, c := m.Shape()
	if err := ValidateRange(c, j1, j2); err != nil {
		return nil, matrixErrorf(opDeleteColumnsRange, err)
	}
	out := allocMatrix(r, c-(j2-j1+1))
	for i, row := range m {
		n := copy(out[i], row[:j1])
		copy(out[i][n:], row[j2+1:])
	}

	return out, nil
}

// Delete returns s without the positions listed in idx, keeping the relative
// order of the remaining elements.
// Repeated indices delete their position once.
// Implementation:
//   - Stage 1: build the membership set (validates range, counts members).
//   - Stage 2: copy every element whose index is not a member.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(n·k) linear / O(n+k) bitmap, Space O(n) (+O(n) bitmap).
func Delete(s Sequence, idx []int, opts ...Option) (Sequence, error) {
	set, members, err := newIndexSet(len(s), idx, NewOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opDelete, err)
	}
	out := make(Sequence, 0, len(s)-members)
	for j, v := range s {
		if !set.contains(j) {
			out = append(out, v)
		}
	}

	return out, nil
}

// DeleteRows returns m without the rows listed in idx; repeats are allowed.
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O(r·k) linear / O(r+k) bitmap + O((r-k)*c) copying.
func DeleteRows(m Matrix, idx []int, opts ...Option) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opDeleteRows, err)
	}
	r, c := m.Shape()
	set, members, err := newIndexSet(r, idx, NewOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opDeleteRows, err)
	}
	out := allocMatrix(r-members, c)
	k := 0
	for i, row := range m {
		if set.contains(i) {
			continue
		}
		copy(out[k], row)
		k++
	}

	return out, nil
}

// DeleteColumns returns m without the columns listed in idx.
// Defined as Transpose(DeleteRows(Transpose(m), idx)).
//
// Errors: ErrEmpty, ErrNotRectangular, ErrOutOfRange.
// Complexity: O(r*c) + DeleteRows cost on the transpose.
func DeleteColumns(m Matrix, idx []int, opts ...Option) (Matrix, error) {
	return byColumns(opDeleteColumns, m, func(t Matrix) (Matrix, error) {
		return DeleteRows(t, idx, opts...)
	})
}
