package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// emissionRecord mirrors the columns of the emissions CSV fixtures.
type emissionRecord struct {
	Country   string  `parquet:"country"`
	Year      int64   `parquet:"year"`
	Emissions float64 `parquet:"emissions"`
}

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func writeParquet[T any](t *testing.T, dir, name string, rows []T) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[T](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	return path
}

func writeWorkbook(t *testing.T, dir, name, sheet string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	require.NoError(t, f.SaveAs(path))

	return path
}

func drain(t *testing.T, src Source) []Row {
	t.Helper()
	rows, err := ReadAll(src)
	require.NoError(t, err)
	require.NoError(t, src.Close())
	return rows
}
