// SPDX-License-Identifier: MIT

// Package codec reads matrix documents and writes operation results.
//
// Input documents are YAML (and therefore also JSON) holding either a bare
// list of rows or an object with a "matrix" key:
//
//	[[1, 2], [3, 4]]
//	matrix:
//	  - [1, 2]
//	  - [3, 4]
//
// Results are written as plain text (matrix.Format), YAML or JSON.
package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intarray/matrix"
)

// Format names an output encoding.
type Format string

const (
	// FormatText prints space-separated values, one row per line.
	FormatText Format = "text"
	// FormatYAML prints a block list of flow rows.
	FormatYAML Format = "yaml"
	// FormatJSON prints a compact JSON array.
	FormatJSON Format = "json"
)

var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("codec: empty document")
	// ErrUnsupportedDocument is returned when the top-level node is neither a
	// list of rows nor a mapping.
	ErrUnsupportedDocument = errors.New("codec: unsupported document")
	// ErrMissingMatrix is returned for a mapping without a "matrix" key.
	ErrMissingMatrix = errors.New("codec: missing matrix key")
	// ErrUnsupportedFormat is returned for an unknown output format name.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
	// ErrUnsupportedValue is returned when Encode receives a value it cannot render.
	ErrUnsupportedValue = errors.New("codec: unsupported value")
)

// document is the object form of an input file.
type document struct {
	Matrix *[][]int `yaml:"matrix"`
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Decode reads one matrix document from r.
func Decode(r io.Reader) (matrix.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes parses one matrix document. Rows may be ragged; shape checks
// are left to the matrix operations.
func DecodeBytes(data []byte) (matrix.Matrix, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	var rows [][]int
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("codec: decode rows: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("codec: decode document: %w", err)
		}
		if doc.Matrix == nil {
			return nil, ErrMissingMatrix
		}
		rows = *doc.Matrix
	default:
		return nil, fmt.Errorf("%w: line %d", ErrUnsupportedDocument, node.Line)
	}
	if rows == nil {
		rows = [][]int{}
	}
	return matrix.Matrix(rows), nil
}

// Encode writes v in the given format, terminated by a newline.
// v must be a matrix.Matrix, a matrix.Sequence or an int.
func Encode(w io.Writer, f Format, v any) error {
	v, err := normalize(v)
	if err != nil {
		return err
	}
	switch f {
	case FormatText:
		_, err = io.WriteString(w, text(v)+"\n")
	case FormatYAML:
		err = encodeYAML(w, v)
	case FormatJSON:
		err = gojson.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}

// normalize replaces nil results by empty ones so every encoder writes a list.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case matrix.Matrix:
		if x == nil {
			return matrix.Matrix{}, nil
		}
		return x, nil
	case matrix.Sequence:
		if x == nil {
			return matrix.Sequence{}, nil
		}
		return x, nil
	case int:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func text(v any) string {
	switch x := v.(type) {
	case matrix.Matrix:
		return matrix.Format(matrix.DefaultPattern, x...)
	case matrix.Sequence:
		return matrix.Format(matrix.DefaultPattern, x)
	default:
		return strconv.Itoa(v.(int))
	}
}

// encodeYAML writes a matrix as a block list of flow rows ("- [1, 2]") and a
// sequence as a single flow list.
func encodeYAML(w io.Writer, v any) error {
	var node *yaml.Node
	switch x := v.(type) {
	case matrix.Matrix:
		node = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, row := range x {
			node.Content = append(node.Content, flowRow(row))
		}
	case matrix.Sequence:
		node = flowRow(x)
	default:
		node = intNode(v.(int))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

func flowRow(row []int) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range row {
		n.Content = append(n.Content, intNode(v))
	}
	return n
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}
