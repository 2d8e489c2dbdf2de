package query

import (
	"io"

	"github.com/pkg/errors"

	"github.com/vegasq/agrostat/reader"
)

// FilterRows returns the rows of src whose field at column equals value.
//
// Comparison is exact string equality. Matching rows keep their input order
// and an empty, non-nil slice is returned when nothing matches. A row with
// too few fields aborts the scan with an *IndexError. src is not closed.
func FilterRows(src reader.Source, value string, column int) ([]reader.Row, error) {
	matched := make([]reader.Row, 0)

	for n := 1; ; n++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return matched, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read row %d", n)
		}

		field, err := fieldAt(row, n, column)
		if err != nil {
			return nil, err
		}
		if field == value {
			matched = append(matched, row)
		}
	}
}

// FilterFile opens the table at path and filters it like FilterRows.
// A missing path fails with reader.ErrResourceNotFound.
func FilterFile(path, value string, column int, opts ...reader.Option) ([]reader.Row, error) {
	src, err := reader.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	return FilterRows(src, value, column)
}

// fieldAt returns row[column], or an *IndexError for the n-th row.
func fieldAt(row reader.Row, n, column int) (string, error) {
	if column < 0 || column >= len(row) {
		return "", &IndexError{Row: n, Column: column, Fields: len(row)}
	}
	return row[column], nil
}
