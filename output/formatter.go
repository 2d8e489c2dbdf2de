package output

import (
	"io"
	"strconv"

	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

// Result is one computed statistic.
type Result struct {
	Dataset   string  `json:"dataset"`
	Country   string  `json:"country"`
	Operation string  `json:"operation"`
	Column    int     `json:"column"`
	Count     int     `json:"count"`
	Value     float64 `json:"value"`
}

// Formatter defines the interface for output formatters.
//
// Implementers render matching rows, computed results, per-country series
// and column listings, and SetOutput changes the destination.
type Formatter interface {
	FormatRows(rows []reader.Row) error
	FormatResults(results []Result) error
	FormatSeries(s *query.Series) error
	FormatColumns(columns []reader.Column) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "json", "jsonl", "csv"}

// New returns the formatter registered under name, or nil.
func New(name string, w io.Writer) Formatter {
	switch name {
	case "text":
		return NewTextFormatter(w)
	case "json", "jsonl":
		return NewJSONFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	default:
		return nil
	}
}

// FormatNumber renders v with the fewest digits that parse back to v, so
// whole numbers print without a fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// seriesRecords flattens a series into country, year, value triples in
// country order.
func seriesRecords(s *query.Series) [][]string {
	var records [][]string
	for _, country := range s.Countries() {
		years := s.Years[country]
		for i, v := range s.Values[country] {
			records = append(records, []string{country, strconv.Itoa(years[i]), FormatNumber(v)})
		}
	}
	return records
}

func columnRecords(columns []reader.Column) [][]string {
	records := make([][]string, len(columns))
	for i, c := range columns {
		records[i] = []string{strconv.Itoa(c.Index), c.Name, c.Type}
	}
	return records
}
