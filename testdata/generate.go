//go:build ignore

// Command generate writes small emissions fixtures in every supported input
// format: go run testdata/generate.go
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/vegasq/agrostat/internal/logger"
)

type Emission struct {
	Area          string  `parquet:"area"`
	Year          int64   `parquet:"year"`
	TotalEmission float64 `parquet:"total_emission"`
}

var emissions = []Emission{
	{Area: "Canada", Year: 1990, TotalEmission: 62542.6},
	{Area: "Canada", Year: 1991, TotalEmission: 61983.2},
	{Area: "Canada", Year: 1992, TotalEmission: 63120.9},
	{Area: "Mexico", Year: 1990, TotalEmission: 94731.1},
	{Area: "Mexico", Year: 1991, TotalEmission: 95310.4},
	{Area: "Mexico", Year: 1992, TotalEmission: 96842.7},
}

var header = []string{"Area", "Year", "total_emission"}

func main() {
	_ = logger.SetLevel("info")

	if err := writeCSV("emissions.csv"); err != nil {
		logger.L.Fatal(err)
	}
	if err := writeParquet("emissions.parquet"); err != nil {
		logger.L.Fatal(err)
	}
	if err := writeWorkbook("emissions.xlsx"); err != nil {
		logger.L.Fatal(err)
	}

	logger.L.Infof("Generated emissions.csv, emissions.parquet and emissions.xlsx with %d rows", len(emissions))
}

func writeCSV(path string) error {
	var b strings.Builder
	b.WriteString(strings.Join(header, ",") + "\n")
	for _, e := range emissions {
		b.WriteString(e.Area + "," + strconv.FormatInt(e.Year, 10) + "," +
			strconv.FormatFloat(e.TotalEmission, 'f', -1, 64) + "\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeParquet(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Emission](file)
	if _, err := writer.Write(emissions); err != nil {
		return err
	}
	return writer.Close()
}

func writeWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{{header[0], header[1], header[2]}}
	for _, e := range emissions {
		rows = append(rows, []interface{}{e.Area, e.Year, e.TotalEmission})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
