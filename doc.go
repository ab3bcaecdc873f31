// Package intarray is a toolkit for slicing, editing and reducing integer
// matrices and sequences, with every result freshly allocated and every
// failure reported as a matchable sentinel error.
//
// 🚀 What is intarray?
//
//	A small, deterministic, allocation-honest library plus a CLI:
//		• Shape constructors: diagonal, identity, constant fill
//		• Transpose, and column edits reusing the row edits through it
//		• Extraction: inclusive ranges, index lists, generalized diagonals
//		• Editing: insert and delete rows/columns, merge sequences
//		• Reductions: min/max with index, sum, product, prefix scans
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/           Sequence & Matrix types, editors, reductions, errors
//	internal/codec/   YAML/JSON matrix documents, text/YAML/JSON output
//	internal/config/  environment defaults of the CLI
//	cmd/intarray/     command-line front end
//
// Quick example:
//
//	a := matrix.Matrix{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
//	d, _ := matrix.Diagonal(a, 1)           // [1, 5]
//	c, _ := matrix.DeleteColumns(a, []int{0}) // [[1, 2] [4, 5] [7, 8]]
//	s, _ := matrix.ColSum(c)                // [12, 15]
//
// See matrix/example_test.go for runnable examples.
package intarray
