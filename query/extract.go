package query

import (
	"strconv"
	"strings"

	"github.com/vegasq/agrostat/reader"
)

// ExtractColumn parses the field at column of every row as a float64.
//
// The result has one value per row, in row order. The first field that is
// not a decimal literal fails the whole call with a *ParseError; there is
// no partial result.
func ExtractColumn(rows []reader.Row, column int) ([]float64, error) {
	values := make([]float64, len(rows))
	for i, row := range rows {
		field, err := fieldAt(row, i+1, column)
		if err != nil {
			return nil, err
		}

		v, err := parseFloat(field, column)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// parseFloat accepts an optional sign, a decimal point and an exponent.
// Surrounding spaces are ignored. Go's hexadecimal and underscore forms are
// rejected so only plain decimal text parses.
func parseFloat(field string, column int) (float64, error) {
	s := strings.TrimSpace(field)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, &ParseError{Value: field, Column: column}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Value: field, Column: column}
	}
	return v, nil
}

// parseYear parses an integer year field.
func parseYear(field string, column int) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, &ParseError{Value: field, Column: column}
	}
	return year, nil
}
