package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

// TextFormatter writes results as sentences and everything else as
// aligned tables.
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new human-readable formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TextFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// FormatResults writes one sentence per result, for example:
//
//	In the test.csv dataset, for country='USA', the sum of values in column 2 is 6.
func (t *TextFormatter) FormatResults(results []Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(t.writer, "In the %s dataset, for country='%s', the %s of values in column %d is %s.\n",
			r.Dataset, r.Country, r.Operation, r.Column, FormatNumber(r.Value))
		if err != nil {
			return errors.Wrap(err, "failed to write result")
		}
	}
	return nil
}

// FormatRows writes matching rows as a table headed by column index.
func (t *TextFormatter) FormatRows(rows []reader.Row) error {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	header := make([]string, width)
	for i := range header {
		header[i] = strconv.Itoa(i)
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		// pad short rows so every line has the same number of cells
		record := make([]string, width)
		copy(record, row)
		records[i] = record
	}
	return t.table(header, records)
}

// FormatSeries writes the series as a country, year, value table.
func (t *TextFormatter) FormatSeries(s *query.Series) error {
	return t.table([]string{"country", "year", "value"}, seriesRecords(s))
}

// FormatColumns writes the column listing as a table.
func (t *TextFormatter) FormatColumns(columns []reader.Column) error {
	return t.table([]string{"index", "name", "type"}, columnRecords(columns))
}

func (t *TextFormatter) table(header []string, records [][]string) error {
	if len(records) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(records)
	table.Render()
	return nil
}
