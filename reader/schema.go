package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// Column describes one field position of a table.
type Column struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// Columns lists the columns of the table at path so users can pick the
// indexes to filter and aggregate on.
//
// Parquet files report their schema leaves. Text and workbook sources report
// the fields of their first row; the core never skips that row, so the names
// are informational only.
func Columns(path string, opts ...Option) ([]Column, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") && (!isGlob(path) || exists(path)) {
		return parquetColumns(path)
	}

	src, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	first, err := src.Next()
	if errors.Is(err, io.EOF) {
		return []Column{}, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make([]Column, len(first))
	for i, name := range first {
		columns[i] = Column{Index: i, Name: name, Type: "STRING"}
	}
	return columns, nil
}

func parquetColumns(path string) ([]Column, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var columns []Column
	for _, field := range r.Schema().Fields() {
		columns = appendLeaves(columns, field, "")
	}
	return columns, nil
}

// appendLeaves walks field depth-first, in the same order parquet assigns
// leaf column indexes. Nested names use dot notation.
func appendLeaves(columns []Column, field parquet.Field, prefix string) []Column {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			columns = appendLeaves(columns, child, name)
		}
		return columns
	}

	return append(columns, Column{
		Index: len(columns),
		Name:  name,
		Type:  leafType(field),
	})
}

// leafType returns a user-friendly type name, preferring the logical type.
func leafType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	if logical := field.Type().LogicalType(); logical != nil {
		switch s := logical.String(); s {
		case "STRING", "UTF8", "ENUM", "UUID", "DATE", "TIME", "TIMESTAMP", "DECIMAL", "JSON":
			return s
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
