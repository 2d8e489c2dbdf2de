package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegasq/agrostat/query"
	"github.com/vegasq/agrostat/reader"
)

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	r := csv.NewReader(buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVFormatter_FormatRows(t *testing.T) {
	tests := []struct {
		name string
		rows []reader.Row
		want [][]string
	}{
		{
			name: "empty rows",
			rows: []reader.Row{},
			want: nil,
		},
		{
			name: "rows keep their fields",
			rows: []reader.Row{{"USA", "2", "2"}, {"USA", "2", "4"}},
			want: [][]string{{"USA", "2", "2"}, {"USA", "2", "4"}},
		},
		{
			name: "fields with commas are quoted",
			rows: []reader.Row{{"Korea, Republic of", "1990"}},
			want: [][]string{{"Korea, Republic of", "1990"}},
		},
		{
			name: "ragged rows",
			rows: []reader.Row{{"a", "b", "c"}, {"d"}},
			want: [][]string{{"a", "b", "c"}, {"d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVFormatter(&buf).FormatRows(tt.rows))
			require.Equal(t, tt.want, parseCSV(t, &buf))
		})
	}
}

func TestCSVFormatter_FormatResults(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVFormatter(&buf).FormatResults([]Result{
		{Dataset: "test.csv", Country: "USA", Operation: "mean", Column: 2, Count: 2, Value: 3},
		{Dataset: "test.csv", Country: "Canada", Operation: "mean", Column: 2, Count: 1, Value: -0.5},
	})
	require.NoError(t, err)

	require.Equal(t, [][]string{
		{"dataset", "country", "operation", "column", "count", "value"},
		{"test.csv", "USA", "mean", "2", "2", "3"},
		{"test.csv", "Canada", "mean", "2", "1", "-0.5"},
	}, parseCSV(t, &buf))
}

func TestCSVFormatter_FormatSeries(t *testing.T) {
	s, err := query.BuildSeries([]reader.Row{
		{"USA", "1990", "2"},
		{"Canada", "1990", "3"},
		{"USA", "1991", "4"},
	}, []string{"Canada", "USA"}, query.SeriesColumns{Country: 0, Year: 1, Value: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).FormatSeries(s))
	require.Equal(t, [][]string{
		{"country", "year", "value"},
		{"Canada", "1990", "3"},
		{"USA", "1990", "2"},
		{"USA", "1991", "4"},
	}, parseCSV(t, &buf))
}

func TestCSVFormatter_FormatColumns(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVFormatter(&buf).FormatColumns([]reader.Column{
		{Index: 0, Name: "Area", Type: "STRING"},
		{Index: 1, Name: "Year", Type: "INT64"},
	})
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"index", "name", "type"},
		{"0", "Area", "STRING"},
		{"1", "Year", "INT64"},
	}, parseCSV(t, &buf))
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	f := NewCSVFormatter(&first)
	f.SetOutput(&second)

	require.NoError(t, f.FormatRows([]reader.Row{{"a"}}))
	require.Empty(t, first.String())
	require.Equal(t, "a\n", second.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"USA", "USA"},
		{"-5.5", "-5.5"},
		{"+3", "+3"},
		{"=SUM(A1:A3)", "'=SUM(A1:A3)"},
		{"+cmd", "'+cmd"},
		{"-cmd|' /C calc'!A0", "'-cmd|'' /C calc''!A0"},
		{"@risk", "'@risk"},
		{"|pipe", "'|pipe"},
		{"\ttab", "'\ttab"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
