// SPDX-License-Identifier: MIT
// Package matrix - plain-text rendering.
//
// Format prints rows of integers with a caller-supplied fmt verb. Values in a
// row are separated by one space and rows by "\n"; there is no trailing
// newline. Ragged rows are printed as they are.

package matrix

import (
	"fmt"
	"strings"
)

// DefaultPattern is the fmt verb used when Format receives an empty pattern.
const DefaultPattern = "%d"

// Format renders rows with pattern applied to every value.
// An empty pattern falls back to DefaultPattern.
//
// Example:
//
//	Format("%3d", []int{1, 2}, []int{30, 4}) == "  1   2\n 30   4"
func Format(pattern string, rows ...[]int) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString(_fmtNewline)
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, pattern, v)
		}
	}

	return b.String()
}
