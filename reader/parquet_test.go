package reader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParquetReader_ReadAll(t *testing.T) {
	dir := t.TempDir()
	path := writeParquet(t, dir, "test.parquet", []emissionRecord{
		{Country: "USA", Year: 1990, Emissions: 2},
		{Country: "Canada", Year: 1990, Emissions: 3.5},
		{Country: "USA", Year: 1991, Emissions: -4.25},
	})

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []Row{
		{"USA", "1990", "2"},
		{"Canada", "1990", "3.5"},
		{"USA", "1991", "-4.25"},
	}, rows)
}

func TestParquetReader_TypesAndNulls(t *testing.T) {
	type record struct {
		Name   string   `parquet:"name"`
		Active bool     `parquet:"active"`
		Small  int32    `parquet:"small"`
		Ratio  float32  `parquet:"ratio"`
		Note   *string  `parquet:"note,optional"`
		Score  *float64 `parquet:"score,optional"`
	}

	note := "ok"
	score := 1.5
	dir := t.TempDir()
	path := writeParquet(t, dir, "types.parquet", []record{
		{Name: "a", Active: true, Small: 7, Ratio: 0.5, Note: &note, Score: &score},
		{Name: "b", Active: false, Small: -1, Ratio: 2},
	})

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []Row{
		{"a", "true", "7", "0.5", "ok", "1.5"},
		{"b", "false", "-1", "2", "", ""},
	}, rows)
}

func TestParquetReader_CloseTwice(t *testing.T) {
	path := writeParquet(t, t.TempDir(), "test.parquet", []emissionRecord{{Country: "USA"}})

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestNewParquetReader_MissingFile(t *testing.T) {
	_, err := NewParquetReader("/a/b/missing.parquet")
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestNewParquetReader_NotParquet(t *testing.T) {
	path := writeLines(t, t.TempDir(), "fake.parquet", "USA,2,2")

	_, err := NewParquetReader(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrResourceNotFound)
}

func TestOpen_Parquet(t *testing.T) {
	path := writeParquet(t, t.TempDir(), "emissions.parquet", []emissionRecord{
		{Country: "USA", Year: 1990, Emissions: 2},
	})

	src, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, []Row{{"USA", "1990", "2"}}, drain(t, src))
}
