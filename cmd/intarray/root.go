// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intarray/internal/codec"
	"github.com/katalvlaran/intarray/internal/config"
	"github.com/katalvlaran/intarray/matrix"
)

// app carries the resolved global settings shared by every subcommand.
type app struct {
	log     *logrus.Logger
	environ map[string]string

	input    string
	format   string
	logLevel string

	out codec.Format
}

// newRootCmd builds the command tree. Flags override the defaults that
// internal/config resolves from environ (variable name to value).
func newRootCmd(log *logrus.Logger, environ map[string]string) *cobra.Command {
	a := &app{log: log, environ: environ}

	root := &cobra.Command{
		Use:   "intarray",
		Short: "Slice, edit and reduce integer matrices",
		Long: `intarray reads a matrix document (YAML or JSON, either a bare list of
rows or an object with a "matrix" key), applies one operation and prints
the result as text, YAML or JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "-", `matrix document path ("-" reads stdin)`)
	pf.StringVarP(&a.format, "format", "f", "text", "output format: text, yaml or json")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		a.transposeCmd(),
		a.diagonalCmd(),
		a.subCmd(),
		a.selectCmd("rows", "Copy the rows listed by --index", matrix.SelectRows),
		a.selectCmd("columns", "Copy the columns listed by --index", matrix.SelectColumns),
		a.rangeCmd("rows-range", "Copy rows --from..--to (inclusive)", matrix.RowsRange),
		a.rangeCmd("columns-range", "Copy columns --from..--to (inclusive)", matrix.ColumnsRange),
		a.insertCmd("insert-rows", "Insert the rows given by --with before row --before", matrix.InsertRows),
		a.insertCmd("insert-columns", "Insert the columns given by --with before column --before", matrix.InsertColumns),
		a.deleteCmd("delete-rows", "Delete the rows listed by --index", matrix.DeleteRows),
		a.deleteCmd("delete-columns", "Delete the columns listed by --index", matrix.DeleteColumns),
		a.rangeCmd("delete-rows-range", "Delete rows --from..--to (inclusive)", matrix.DeleteRowsRange),
		a.rangeCmd("delete-columns-range", "Delete columns --from..--to (inclusive)", matrix.DeleteColumnsRange),
		a.mergeColumnsCmd(),
		a.reduceCmd(),
		a.identityCmd(),
		a.fillCmd(),
	)

	return root
}

// resolve merges environment defaults under the flags the user did not set,
// then configures logging and the output format.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(a.environ)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("input") {
		a.input = cfg.Input
	}
	if !flags.Changed("format") {
		a.format = cfg.Format
	}
	if !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}

	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(level)

	if a.out, err = codec.ParseFormat(a.format); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"input":   a.input,
		"format":  a.out,
	}).Debug("settings resolved")

	return nil
}

// load decodes the input document.
func (a *app) load(cmd *cobra.Command) (matrix.Matrix, error) {
	var r io.Reader = cmd.InOrStdin()
	if a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	m, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"rows": m.Rows(),
		"cols": m.Cols(),
	}).Debug("matrix loaded")

	return m, nil
}

// write encodes an operation result to the command output.
func (a *app) write(cmd *cobra.Command, v any) error {
	return codec.Encode(cmd.OutOrStdout(), a.out, v)
}
