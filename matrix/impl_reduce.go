// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise and flat reductions: min, max, their index positions, sum,
//     product, and the cumulative (prefix-scan) variants.
//
// Exposed API:
//   - Min / Max / MinIndex / MaxIndex (Sequence)  -> int
//   - Sum / Product (Sequence)                    -> int
//   - CumSum / CumProduct (Sequence)              -> Sequence (same length)
//   - ColMin / ColMax / ColMinIndex / ColMaxIndex -> Sequence (one per column)
//   - ColSum / ColProduct                         -> Sequence (one per column)
//   - ColCumSum / ColCumProduct                   -> Matrix (same shape)
//
// Determinism & Performance:
//   - One pass per column, fixed j→i traversal for column forms.
//   - Comparisons are strict (< and >), so ties resolve to the FIRST
//     (lowest-index) occurrence.
//   - Sum and Product have no overflow guard: int arithmetic wraps.
//
// Zero-size policy:
//   - Min/Max/MinIndex/MaxIndex of an empty Sequence → ErrEmpty.
//   - Sum/Product of an empty Sequence → 0 / 1 (neutral elements).
//   - CumSum/CumProduct of an empty Sequence → empty Sequence.
//   - Column forms require a non-empty rectangular Matrix (ValidateShape).

package matrix

// Operation name constants for unified error wrapping.
const (
	opMin           = "Min"
	opMax           = "Max"
	opMinIndex      = "MinIndex"
	opMaxIndex      = "MaxIndex"
	opColMin        = "ColMin"
	opColMax        = "ColMax"
	opColMinIndex   = "ColMinIndex"
	opColMaxIndex   = "ColMaxIndex"
	opColSum        = "ColSum"
	opColProduct    = "ColProduct"
	opColCumSum     = "ColCumSum"
	opColCumProduct = "ColCumProduct"
)

// extremeIndex returns the index of the first element that beats every
// earlier one under better(a, b) (strict comparison).
func extremeIndex(s Sequence, better func(a, b int) bool) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if better(s[i], s[best]) {
			best = i
		}
	}

	return best
}

func less(a, b int) bool    { return a < b }
func greater(a, b int) bool { return a > b }

// Min returns the smallest element of s.
// Errors: ErrEmpty.
func Min(s Sequence) (int, error) {
	if err := ValidateNonEmptySequence(s); err != nil {
		return 0, matrixErrorf(opMin, err)
	}

	return s[extremeIndex(s, less)], nil
}

// Max returns the largest element of s.
// Errors: ErrEmpty.
func Max(s Sequence) (int, error) {
	if err := ValidateNonEmptySequence(s); err != nil {
		return 0, matrixErrorf(opMax, err)
	}

	return s[extremeIndex(s, greater)], nil
}

// MinIndex returns the index of the first occurrence of the smallest element.
// Errors: ErrEmpty.
func MinIndex(s Sequence) (int, error) {
	if err := ValidateNonEmptySequence(s); err != nil {
		return 0, matrixErrorf(opMinIndex, err)
	}

	return extremeIndex(s, less), nil
}

// MaxIndex returns the index of the first occurrence of the largest element.
// Errors: ErrEmpty.
func MaxIndex(s Sequence) (int, error) {
	if err := ValidateNonEmptySequence(s); err != nil {
		return 0, matrixErrorf(opMaxIndex, err)
	}

	return extremeIndex(s, greater), nil
}

// Sum returns Σ s[i]; 0 for an empty s.
func Sum(s Sequence) int {
	total := 0
	for _, v := range s {
		total += v
	}

	return total
}

// Product returns Π s[i]; 1 for an empty s. Overflow wraps.
func Product(s Sequence) int {
	p := 1
	for _, v := range s {
		p *= v
	}

	return p
}

// CumSum returns the prefix sums: out[k] = s[0] + ... + s[k].
// Complexity: O(n).
func CumSum(s Sequence) Sequence {
	out := make(Sequence, len(s))
	acc := 0
	for i, v := range s {
		acc += v
		out[i] = acc
	}

	return out
}

// CumProduct returns the prefix products: out[k] = s[0] * ... * s[k].
// Complexity: O(n).
func CumProduct(s Sequence) Sequence {
	out := make(Sequence, len(s))
	acc := 1
	for i, v := range s {
		acc *= v
		out[i] = acc
	}

	return out
}

// columnFold runs one pass per column and stores fold's result for column j.
// Implementation:
//   - Stage 1: ValidateShape (ErrEmpty, ErrNotRectangular).
//   - Stage 2: for each column j, fold(j) walks rows 0..r-1 in order.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnFold(tag string, m Matrix, fold func(j int) int) (Sequence, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := make(Sequence, m.Cols())
	for j := range out {
		out[j] = fold(j)
	}

	return out, nil
}

// columnExtremeIndex returns, for column j, the row of the first element that
// beats all earlier rows under better.
func columnExtremeIndex(m Matrix, j int, better func(a, b int) bool) int {
	best := 0
	for i := 1; i < len(m); i++ {
		if better(m[i][j], m[best][j]) {
			best = i
		}
	}

	return best
}

// ColMin returns the minimum of each column.
// Running value starts at row 0 and folds min down the remaining rows.
// Errors: ErrEmpty, ErrNotRectangular.
func ColMin(m Matrix) (Sequence, error) {
	return columnFold(opColMin, m, func(j int) int {
		v := m[0][j]
		for i := 1; i < len(m); i++ {
			v = min(v, m[i][j])
		}

		return v
	})
}

// ColMax returns the maximum of each column.
// Errors: ErrEmpty, ErrNotRectangular.
func ColMax(m Matrix) (Sequence, error) {
	return columnFold(opColMax, m, func(j int) int {
		v := m[0][j]
		for i := 1; i < len(m); i++ {
			v = max(v, m[i][j])
		}

		return v
	})
}

// ColMinIndex returns, per column, the row index of the minimum value.
// Ties resolve to the lowest row index.
//
// Errors: ErrEmpty, ErrNotRectangular.
//
// AI-Hints:
//   - m[ColMinIndex(m)[j]][j] == ColMin(m)[j] for every column j.
func ColMinIndex(m Matrix) (Sequence, error) {
	return columnFold(opColMinIndex, m, func(j int) int {
		return columnExtremeIndex(m, j, less)
	})
}

// ColMaxIndex returns, per column, the row index of the maximum value.
// Ties resolve to the lowest row index.
// Errors: ErrEmpty, ErrNotRectangular.
func ColMaxIndex(m Matrix) (Sequence, error) {
	return columnFold(opColMaxIndex, m, func(j int) int {
		return columnExtremeIndex(m, j, greater)
	})
}

// ColSum returns the sum of each column.
// Errors: ErrEmpty, ErrNotRectangular.
func ColSum(m Matrix) (Sequence, error) {
	return columnFold(opColSum, m, func(j int) int {
		s := 0
		for _, row := range m {
			s += row[j]
		}

		return s
	})
}

// ColProduct returns the product of each column. Overflow wraps.
// Errors: ErrEmpty, ErrNotRectangular.
func ColProduct(m Matrix) (Sequence, error) {
	return columnFold(opColProduct, m, func(j int) int {
		p := 1
		for _, row := range m {
			p *= row[j]
		}

		return p
	})
}

// columnScan writes the running fold of each column into a same-shape matrix.
// seed is the neutral element; step combines the accumulator with m[i][j].
func columnScan(tag string, m Matrix, seed int, step func(acc, v int) int) (Matrix, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := m.Shape()
	out := allocMatrix(r, c)
	for j := 0; j < c; j++ { // one pass per column
		acc := seed
		for i := 0; i < r; i++ {
			acc = step(acc, m[i][j])
			out[i][j] = acc
		}
	}

	return out, nil
}

// ColCumSum returns out[i][j] = m[0][j] + ... + m[i][j].
// Errors: ErrEmpty, ErrNotRectangular.
// Complexity: O(r*c).
func ColCumSum(m Matrix) (Matrix, error) {
	return columnScan(opColCumSum, m, 0, func(acc, v int) int { return acc + v })
}

// ColCumProduct returns out[i][j] = m[0][j] * ... * m[i][j].
// Errors: ErrEmpty, ErrNotRectangular.
// Complexity: O(r*c).
func ColCumProduct(m Matrix) (Matrix, error) {
	return columnScan(opColCumProduct, m, 1, func(acc, v int) int { return acc * v })
}
