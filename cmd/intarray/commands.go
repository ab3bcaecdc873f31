// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intarray/internal/codec"
	"github.com/katalvlaran/intarray/matrix"
)

// reducers maps --op names to the column-wise reductions.
var reducers = map[string]func(matrix.Matrix) (any, error){
	"min":         seqResult(matrix.ColMin),
	"max":         seqResult(matrix.ColMax),
	"min-index":   seqResult(matrix.ColMinIndex),
	"max-index":   seqResult(matrix.ColMaxIndex),
	"sum":         seqResult(matrix.ColSum),
	"product":     seqResult(matrix.ColProduct),
	"cum-sum":     matResult(matrix.ColCumSum),
	"cum-product": matResult(matrix.ColCumProduct),
}

func seqResult(fn func(matrix.Matrix) (matrix.Sequence, error)) func(matrix.Matrix) (any, error) {
	return func(m matrix.Matrix) (any, error) { return fn(m) }
}

func matResult(fn func(matrix.Matrix) (matrix.Matrix, error)) func(matrix.Matrix) (any, error) {
	return func(m matrix.Matrix) (any, error) { return fn(m) }
}

// unary wires a command whose result depends on the input matrix only.
func (a *app) unary(cmd *cobra.Command, op func(matrix.Matrix) (any, error)) {
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		m, err := a.load(cmd)
		if err != nil {
			return err
		}
		a.log.WithField("op", cmd.Name()).Debug("applying operation")
		v, err := op(m)
		if err != nil {
			return err
		}
		return a.write(cmd, v)
	}
}

func (a *app) transposeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "transpose", Short: "Swap rows and columns"}
	a.unary(cmd, matResult(matrix.Transpose))
	return cmd
}

func (a *app) diagonalCmd() *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "diagonal",
		Short: "Extract the diagonal at --offset (positive above, negative below the main one)",
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "diagonal offset")
	a.unary(cmd, func(m matrix.Matrix) (any, error) { return matrix.Diagonal(m, offset) })
	return cmd
}

func (a *app) subCmd() *cobra.Command {
	var i1, i2, j1, j2 int
	cmd := &cobra.Command{Use: "sub", Short: "Copy rows --i1..--i2 and columns --j1..--j2 (inclusive)"}
	cmd.Flags().IntVar(&i1, "i1", 0, "first row")
	cmd.Flags().IntVar(&i2, "i2", 0, "last row")
	cmd.Flags().IntVar(&j1, "j1", 0, "first column")
	cmd.Flags().IntVar(&j2, "j2", 0, "last column")
	for _, name := range []string{"i1", "i2", "j1", "j2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	a.unary(cmd, func(m matrix.Matrix) (any, error) { return matrix.SubMatrixRange(m, i1, i2, j1, j2) })
	return cmd
}

func (a *app) selectCmd(use, short string, fn func(matrix.Matrix, []int) (matrix.Matrix, error)) *cobra.Command {
	var idx []int
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.Flags().IntSliceVar(&idx, "index", nil, "comma-separated indices; repeats allowed")
	_ = cmd.MarkFlagRequired("index")
	a.unary(cmd, func(m matrix.Matrix) (any, error) { return fn(m, idx) })
	return cmd
}

func (a *app) rangeCmd(use, short string, fn func(matrix.Matrix, int, int) (matrix.Matrix, error)) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.Flags().IntVar(&from, "from", 0, "first index")
	cmd.Flags().IntVar(&to, "to", 0, "last index")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	a.unary(cmd, func(m matrix.Matrix) (any, error) { return fn(m, from, to) })
	return cmd
}

func (a *app) insertCmd(use, short string, fn func(matrix.Matrix, int, [][]int) (matrix.Matrix, error)) *cobra.Command {
	var (
		before int
		with   string
	)
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.Flags().IntVar(&before, "before", 0, "insertion point; the length appends")
	cmd.Flags().StringVar(&with, "with", "", `values as a list of lists, e.g. "[[1,2],[3,4]]"`)
	_ = cmd.MarkFlagRequired("with")
	a.unary(cmd, func(m matrix.Matrix) (any, error) {
		values, err := decodeFlag("with", with)
		if err != nil {
			return nil, err
		}
		return fn(m, before, values)
	})
	return cmd
}

func (a *app) deleteCmd(use, short string, fn func(matrix.Matrix, []int, ...matrix.Option) (matrix.Matrix, error)) *cobra.Command {
	var (
		idx    []int
		bitmap bool
	)
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.Flags().IntSliceVar(&idx, "index", nil, "comma-separated indices; repeats delete once")
	cmd.Flags().BoolVar(&bitmap, "bitmap", false, "use the bitmap membership test")
	_ = cmd.MarkFlagRequired("index")
	a.unary(cmd, func(m matrix.Matrix) (any, error) {
		opt := matrix.WithLinearMembership()
		if bitmap {
			opt = matrix.WithBitmapMembership()
		}
		return fn(m, idx, opt)
	})
	return cmd
}

func (a *app) mergeColumnsCmd() *cobra.Command {
	var with string
	cmd := &cobra.Command{
		Use:   "merge-columns",
		Short: "Place every input row, then every --with list, side by side as columns",
	}
	cmd.Flags().StringVar(&with, "with", "", `extra sequences as a list of lists, e.g. "[[1,2]]"`)
	a.unary(cmd, func(m matrix.Matrix) (any, error) {
		extra, err := decodeFlag("with", with)
		if err != nil {
			return nil, err
		}
		seqs := make([]matrix.Sequence, 0, len(m)+len(extra))
		for _, row := range m {
			seqs = append(seqs, row)
		}
		for _, row := range extra {
			seqs = append(seqs, row)
		}
		return matrix.MergeColumns(seqs...)
	})
	return cmd
}

func (a *app) reduceCmd() *cobra.Command {
	var op string
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce every column: min, max, min-index, max-index, sum, product, cum-sum, cum-product",
	}
	cmd.Flags().StringVar(&op, "op", "sum", "reduction name")
	a.unary(cmd, func(m matrix.Matrix) (any, error) {
		fn, ok := reducers[op]
		if !ok {
			return nil, fmt.Errorf("unknown reduction %q", op)
		}
		return fn(m)
	})
	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Print the --size × --size identity matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matrix.NewIdentity(size)
			if err != nil {
				return err
			}
			return a.write(cmd, m)
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "matrix size")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (a *app) fillCmd() *cobra.Command {
	var rows, cols, value int
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Print a --rows × --cols matrix filled with --value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matrix.NewFilled(rows, cols, value)
			if err != nil {
				return err
			}
			return a.write(cmd, m)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "row count")
	cmd.Flags().IntVar(&cols, "cols", 0, "column count")
	cmd.Flags().IntVar(&value, "value", 0, "fill value")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	return cmd
}

// decodeFlag parses a list-of-lists flag value; an empty value yields nothing.
func decodeFlag(name, value string) (matrix.Matrix, error) {
	if value == "" {
		return nil, nil
	}
	m, err := codec.DecodeBytes([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return m, nil
}
