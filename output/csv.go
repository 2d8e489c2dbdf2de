package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

// CSVFormatter outputs records as CSV
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// FormatRows writes matching rows as they were read, without a header.
func (c *CSVFormatter) FormatRows(rows []reader.Row) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string(row)
	}
	return c.write(nil, records)
}

// FormatResults writes one record per result after a header.
func (c *CSVFormatter) FormatResults(results []Result) error {
	header := []string{"dataset", "country", "operation", "column", "count", "value"}
	records := make([][]string, len(results))
	for i, r := range results {
		records[i] = []string{
			r.Dataset,
			r.Country,
			r.Operation,
			strconv.Itoa(r.Column),
			strconv.Itoa(r.Count),
			FormatNumber(r.Value),
		}
	}
	return c.write(header, records)
}

// FormatSeries writes the series in long form: country, year, value.
func (c *CSVFormatter) FormatSeries(s *query.Series) error {
	return c.write([]string{"country", "year", "value"}, seriesRecords(s))
}

// FormatColumns writes the column listing.
func (c *CSVFormatter) FormatColumns(columns []reader.Column) error {
	return c.write([]string{"index", "name", "type"}, columnRecords(columns))
}

func (c *CSVFormatter) write(header []string, records [][]string) error {
	csvWriter := csv.NewWriter(c.writer)

	if header != nil {
		if err := csvWriter.Write(header); err != nil {
			return errors.Wrap(err, "failed to write CSV header")
		}
	}

	for _, record := range records {
		sanitized := make([]string, len(record))
		for i, field := range record {
			sanitized[i] = formatValue(field)
		}
		if err := csvWriter.Write(sanitized); err != nil {
			return errors.Wrap(err, "failed to write CSV record")
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV writer")
	}

	return nil
}

// formatValue sanitizes a field against CSV injection. Fields that would
// start a spreadsheet formula are prefixed with a quote, except plain
// negative numbers, which are left as they are.
func formatValue(val string) string {
	if len(val) == 0 {
		return val
	}

	switch val[0] {
	case '-', '+':
		if _, err := strconv.ParseFloat(val, 64); err == nil {
			return val
		}
		fallthrough
	case '=', '@', '\t', '\r', '\n', '|':
		// Escape existing single quotes and prefix with quote to prevent formula injection
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
