package output

import (
	"io"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

// JSONFormatter outputs JSON Lines: one JSON value per line.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// FormatRows writes each row as a JSON array of strings.
func (j *JSONFormatter) FormatRows(rows []reader.Row) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		if err := encoder.Encode([]string(row)); err != nil {
			return errors.Wrap(err, "failed to encode row")
		}
	}
	return nil
}

// FormatResults writes each result as a JSON object.
func (j *JSONFormatter) FormatResults(results []Result) error {
	encoder := json.NewEncoder(j.writer)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
	}
	return nil
}

type seriesDocument struct {
	Countries  []string             `json:"countries"`
	Values     map[string][]float64 `json:"values"`
	Years      map[string][]int     `json:"years"`
	AllYears   []int                `json:"all_years"`
	TableYears []int                `json:"table_years"`
}

// FormatSeries writes the whole series as a single JSON object.
func (j *JSONFormatter) FormatSeries(s *query.Series) error {
	doc := seriesDocument{
		Countries:  s.Countries(),
		Values:     s.Values,
		Years:      s.Years,
		AllYears:   s.AllYears(),
		TableYears: s.TableYears,
	}
	if doc.Countries == nil {
		doc.Countries = []string{}
	}
	if doc.AllYears == nil {
		doc.AllYears = []int{}
	}
	if doc.TableYears == nil {
		doc.TableYears = []int{}
	}

	if err := json.NewEncoder(j.writer).Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode series")
	}
	return nil
}

// FormatColumns writes each column as a JSON object.
func (j *JSONFormatter) FormatColumns(columns []reader.Column) error {
	encoder := json.NewEncoder(j.writer)
	for _, c := range columns {
		if err := encoder.Encode(c); err != nil {
			return errors.Wrap(err, "failed to encode column")
		}
	}
	return nil
}
